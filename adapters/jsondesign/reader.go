package jsondesign

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gocontrast/internal/errors"

	"github.com/tidwall/gjson"
)

// Reader extracts design matrix column names from a JSON document. Path is a
// gjson path to an array whose elements are either names or objects with a
// "name" field.
type Reader struct {
	source string
	data   []byte
	path   string
}

// NewFileReader reads the document from a file on first use
func NewFileReader(filePath, path string) *Reader {
	return &Reader{source: filePath, path: defaultPath(path)}
}

// NewBytesReader reads an in-memory document, labelled source in errors
func NewBytesReader(source string, data []byte, path string) *Reader {
	return &Reader{source: source, data: data, path: defaultPath(path)}
}

func defaultPath(path string) string {
	if path == "" {
		return "columns"
	}
	return path
}

// Describe names the document and path
func (r *Reader) Describe() string {
	return r.source + "#" + r.path
}

// Columns returns the names found at the path, in document order
func (r *Reader) Columns(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := r.data
	if data == nil {
		body, err := os.ReadFile(r.source)
		if err != nil {
			return nil, errors.DesignSourceError(r.Describe(), err)
		}
		data = body
	}

	cols, err := extractColumns(data, r.path)
	if err != nil {
		return nil, errors.DesignSourceError(r.Describe(), err)
	}
	return cols, nil
}

func extractColumns(data []byte, path string) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("path '%s' not found", path)
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("path '%s' is not an array", path)
	}

	var (
		cols    []string
		seen    = make(map[string]bool)
		elemErr error
	)
	result.ForEach(func(key, value gjson.Result) bool {
		var name string
		switch {
		case value.Type == gjson.String:
			name = value.String()
		case value.IsObject() && value.Get("name").Type == gjson.String:
			name = value.Get("name").String()
		default:
			elemErr = fmt.Errorf("element %d is neither a name nor an object with a name", key.Int())
			return false
		}
		name = strings.TrimSpace(name)
		if name == "" {
			elemErr = fmt.Errorf("element %d has an empty name", key.Int())
			return false
		}
		if seen[name] {
			elemErr = fmt.Errorf("duplicate column %q", name)
			return false
		}
		seen[name] = true
		cols = append(cols, name)
		return true
	})
	if elemErr != nil {
		return nil, elemErr
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("path '%s' holds no columns", path)
	}
	return cols, nil
}
