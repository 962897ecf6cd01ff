package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gocontrast/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DesignReader reads the header row of a design matrix stored as xlsx or csv.
// One row per scan, one column per regressor.
type DesignReader struct {
	config   DesignConfig
	fileType string // "xlsx" or "csv"
}

// NewDesignReader creates a reader; the file type follows the extension
func NewDesignReader(config DesignConfig) *DesignReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	if config.Sheet == "" {
		config.Sheet = "Sheet1"
	}
	return &DesignReader{config: config, fileType: fileType}
}

// Describe names the file for error messages
func (r *DesignReader) Describe() string {
	return r.config.FilePath
}

// Columns returns the regressor names from the header row
func (r *DesignReader) Columns(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.config.FilePath); err != nil {
		return nil, errors.DesignSourceError(r.Describe(), err)
	}

	var (
		header []string
		err    error
	)
	switch r.fileType {
	case "csv":
		header, err = r.readCSVHeader()
	default:
		header, err = r.readExcelHeader()
	}
	if err != nil {
		return nil, errors.DesignSourceError(r.Describe(), err)
	}

	cols, err := normalizeHeader(header)
	if err != nil {
		return nil, errors.DesignSourceError(r.Describe(), err)
	}
	return cols, nil
}

// readExcelHeader streams only the first row of the configured sheet
func (r *DesignReader) readExcelHeader() ([]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.Rows(r.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.config.Sheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Error(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("sheet %s has no header row", r.config.Sheet)
	}
	return rows.Columns()
}

func (r *DesignReader) readCSVHeader() ([]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header, nil
}

// normalizeHeader trims names and drops a blank leading cell, which is the
// row index column written by dataframe exports.
func normalizeHeader(header []string) ([]string, error) {
	cols := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("header cell %d is empty", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		cols = append(cols, name)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("header row has no columns")
	}
	return cols, nil
}
