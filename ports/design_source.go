package ports

import "context"

// DesignSource yields the ordered regressor names of one design matrix
type DesignSource interface {
	// Columns returns the column names in design matrix order
	Columns(ctx context.Context) ([]string, error)
	// Describe names the source for logs and error messages
	Describe() string
}
