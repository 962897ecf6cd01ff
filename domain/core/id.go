package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParadigmID selects the contrast builder for one experimental protocol
type ParadigmID string

// RegressorName identifies one design matrix column
type RegressorName string

// RunID identifies one resolution report
type RunID string

// NewRunID creates a new unique identifier using UUID v7 for time-ordered generation
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return RunID(id.String())
}

// String conversions
func (id ParadigmID) String() string    { return string(id) }
func (id RegressorName) String() string { return string(id) }
func (id RunID) String() string         { return string(id) }

// IsEmpty checks if the ID is empty
func (id RunID) IsEmpty() bool {
	return id == ""
}

// ParseParadigmID parses a string into ParadigmID. Ids match exactly, so
// surrounding whitespace is rejected rather than trimmed.
func ParseParadigmID(s string) (ParadigmID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("paradigm ID cannot be empty")
	}
	if strings.TrimSpace(s) != s {
		return "", fmt.Errorf("paradigm ID %q has surrounding whitespace", s)
	}
	return ParadigmID(s), nil
}
