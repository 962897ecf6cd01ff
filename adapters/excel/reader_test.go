package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gocontrast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, sheet string, header []string, rows int) string {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
	}
	for i, h := range header {
		if h == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r := 0; r < rows; r++ {
		for c := range header {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, float64(r+c)))
		}
	}
	path := filepath.Join(t.TempDir(), "design.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDesignReaderXLSX(t *testing.T) {
	path := writeXLSX(t, "Sheet1", []string{"talk", "no_talk", "talk_derivative", "constant"}, 3)

	cols, err := NewDesignReader(DefaultDesignConfig(path)).Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"talk", "no_talk", "talk_derivative", "constant"}, cols)
}

func TestDesignReaderNamedSheetWithIndexColumn(t *testing.T) {
	path := writeXLSX(t, "design", []string{"", "belief", "photo", "drift_1"}, 2)

	reader := NewDesignReader(DesignConfig{FilePath: path, Sheet: "design"})
	cols, err := reader.Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"belief", "photo", "drift_1"}, cols)
}

func TestDesignReaderCSV(t *testing.T) {
	path := writeFile(t, "design.csv", "\ufeff,stop, go ,constant\n0,1,0,1\n1,0,1,1\n")

	reader := NewDesignReader(DefaultDesignConfig(path))
	assert.Equal(t, path, reader.Describe())
	cols, err := reader.Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"stop", "go", "constant"}, cols)
}

func TestDesignReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.xlsx")},
		{"empty csv", writeFile(t, "empty.csv", "")},
		{"duplicate column", writeFile(t, "dup.csv", "stop,stop\n")},
		{"blank inner cell", writeFile(t, "blank.csv", "stop,,go\n")},
		{"only index", writeFile(t, "index.csv", ",\n")},
		{"not a workbook", writeFile(t, "broken.xlsx", "not a zip")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := NewDesignReader(DefaultDesignConfig(tt.path)).Columns(context.Background())
			assert.Nil(t, cols)
			require.Error(t, err)
			assert.Equal(t, errors.CodeDesignSource, errors.GetCode(err))
		})
	}
}

func TestDesignReaderMissingSheet(t *testing.T) {
	path := writeXLSX(t, "Sheet1", []string{"a"}, 1)

	_, err := NewDesignReader(DesignConfig{FilePath: path, Sheet: "runs"}).Columns(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDesignSource, errors.GetCode(err))
}

func TestDesignReaderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDesignReader(DefaultDesignConfig("whatever.csv")).Columns(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
