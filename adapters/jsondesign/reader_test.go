package jsondesign

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gocontrast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsFromDefaultPath(t *testing.T) {
	doc := []byte(`{"columns": ["belief", "photo", "belief_derivative", "constant"]}`)

	cols, err := NewBytesReader("inline", doc, "").Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"belief", "photo", "belief_derivative", "constant"}, cols)
}

func TestColumnsFromNestedObjects(t *testing.T) {
	doc := []byte(`{"runs": [{"regressors": [{"name": "stop", "onsets": 12}, {"name": "go"}, "constant"]}]}`)

	reader := NewBytesReader("inline", doc, "runs.0.regressors")
	assert.Equal(t, "inline#runs.0.regressors", reader.Describe())
	cols, err := reader.Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"stop", "go", "constant"}, cols)
}

func TestColumnsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"columns": ["talk", "no_talk"]}`), 0o644))

	cols, err := NewFileReader(path, "columns").Columns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"talk", "no_talk"}, cols)

	_, err = NewFileReader(filepath.Join(t.TempDir(), "absent.json"), "").Columns(context.Background())
	assert.Equal(t, errors.CodeDesignSource, errors.GetCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestColumnsRejectsMalformedDocuments(t *testing.T) {
	tests := map[string]string{
		"invalid json": `{"columns": [`,
		"missing path": `{"regressors": ["a"]}`,
		"not an array": `{"columns": "a,b"}`,
		"number":       `{"columns": ["a", 3]}`,
		"nameless":     `{"columns": [{"label": "a"}]}`,
		"blank name":   `{"columns": ["a", "  "]}`,
		"duplicate":    `{"columns": ["a", "a"]}`,
		"empty":        `{"columns": []}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			cols, err := NewBytesReader("inline", []byte(doc), "").Columns(context.Background())
			assert.Nil(t, cols)
			require.Error(t, err)
			assert.Equal(t, errors.CodeDesignSource, errors.GetCode(err))
		})
	}
}
