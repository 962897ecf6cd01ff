package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Dispatch errors
	ErrUnknownParadigm = errors.New("unknown paradigm")

	// Construction errors
	ErrMissingRegressor = errors.New("missing regressor")

	// Contract errors: these indicate a defect in a builder or in the registry
	// table, never a caller mistake.
	ErrInternalConsistency  = errors.New("internal consistency violation")
	ErrReservedContrastName = errors.New("reserved contrast name")
	ErrInvalidRegistry      = errors.New("invalid paradigm registry")
)

// MissingRegressorError names the logical quantity a builder could not
// resolve, together with every candidate combination it tried in order.
type MissingRegressorError struct {
	Quantity   string
	Candidates [][]string
}

func (e *MissingRegressorError) Error() string {
	if len(e.Candidates) <= 1 {
		return fmt.Sprintf("%s: %s", ErrMissingRegressor, e.Quantity)
	}
	tried := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		tried[i] = strings.Join(c, "+")
	}
	return fmt.Sprintf("%s: %s (tried %s)", ErrMissingRegressor, e.Quantity, strings.Join(tried, ", "))
}

// Is makes errors.Is(err, ErrMissingRegressor) hold for every MissingRegressorError.
func (e *MissingRegressorError) Is(target error) bool {
	return target == ErrMissingRegressor
}

// Error constructors with context
func NewUnknownParadigmError(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownParadigm, id)
}

func NewMissingRegressorError(quantity string, candidates ...[]string) error {
	return &MissingRegressorError{Quantity: quantity, Candidates: candidates}
}

func NewConsistencyError(paradigm string, missing, extra []string) error {
	return fmt.Errorf("%w in paradigm %s: missing %v, unexpected %v", ErrInternalConsistency, paradigm, missing, extra)
}

// Error checking helpers
func IsUnknownParadigm(err error) bool {
	return errors.Is(err, ErrUnknownParadigm)
}

func IsMissingRegressor(err error) bool {
	return errors.Is(err, ErrMissingRegressor)
}

// IsDefect reports errors that point at a bug in the engine rather than at
// the caller's input.
func IsDefect(err error) bool {
	return errors.Is(err, ErrInternalConsistency) ||
		errors.Is(err, ErrReservedContrastName) ||
		errors.Is(err, ErrInvalidRegistry)
}
