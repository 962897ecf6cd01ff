package contrast

import (
	"encoding/json"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Reserved aggregate names. They are appended by the augmentation passes
// and may never be declared by a paradigm.
const (
	Derivatives     = "derivatives"
	EffectsInterest = "effects_interest"
)

// IsReserved reports whether name is one of the aggregate names
func IsReserved(name string) bool {
	return name == Derivatives || name == EffectsInterest
}

// Contrast is one named entry of a resolved contrast set. It holds either a
// single weight vector over the design columns or a row-stacked matrix of
// such vectors. The zero value is the introspection placeholder.
type Contrast struct {
	vec   *mat.VecDense
	stack *mat.Dense
}

// Vector wraps v; the contrast takes ownership of it
func Vector(v *mat.VecDense) Contrast {
	return Contrast{vec: v}
}

// Stack builds a matrix with one row per vector, in order. An empty row list
// yields the placeholder.
func Stack(rows []*mat.VecDense) Contrast {
	if len(rows) == 0 {
		return Contrast{}
	}
	n := rows[0].Len()
	m := mat.NewDense(len(rows), n, nil)
	for i, r := range rows {
		m.SetRow(i, mat.Col(nil, 0, r))
	}
	return Contrast{stack: m}
}

// Placeholder is the value reported for every declared name in introspection mode
func Placeholder() Contrast {
	return Contrast{}
}

// IsPlaceholder reports whether c carries no numeric data
func (c Contrast) IsPlaceholder() bool {
	return c.vec == nil && c.stack == nil
}

// IsStacked reports whether c is a multi-row contrast
func (c Contrast) IsStacked() bool {
	return c.stack != nil
}

// Vec returns the weight vector, or nil for stacked contrasts and placeholders
func (c Contrast) Vec() *mat.VecDense {
	return c.vec
}

// Matrix returns c as an r×n matrix; single vectors are viewed as 1×n
func (c Contrast) Matrix() mat.Matrix {
	switch {
	case c.stack != nil:
		return c.stack
	case c.vec != nil:
		return c.vec.T()
	default:
		return nil
	}
}

// Rows returns the number of weight rows (0 for placeholders)
func (c Contrast) Rows() int {
	switch {
	case c.stack != nil:
		r, _ := c.stack.Dims()
		return r
	case c.vec != nil:
		return 1
	default:
		return 0
	}
}

// Row returns a copy of weight row i
func (c Contrast) Row(i int) []float64 {
	if c.stack != nil {
		return mat.Row(nil, i, c.stack)
	}
	if c.vec != nil && i == 0 {
		return mat.Col(nil, 0, c.vec)
	}
	return nil
}

// RawRows copies every weight row
func (c Contrast) RawRows() [][]float64 {
	rows := make([][]float64, c.Rows())
	for i := range rows {
		rows[i] = c.Row(i)
	}
	return rows
}

// Equal reports exact equality of shape and weights
func (c Contrast) Equal(o Contrast) bool {
	if c.IsPlaceholder() || o.IsPlaceholder() {
		return c.IsPlaceholder() && o.IsPlaceholder()
	}
	if c.IsStacked() != o.IsStacked() {
		return false
	}
	return mat.Equal(c.Matrix(), o.Matrix())
}

// MarshalJSON renders vectors as flat arrays, stacked contrasts as arrays of
// rows and placeholders as an empty array.
func (c Contrast) MarshalJSON() ([]byte, error) {
	switch {
	case c.stack != nil:
		return json.Marshal(c.RawRows())
	case c.vec != nil:
		return json.Marshal(c.Row(0))
	default:
		return []byte("[]"), nil
	}
}

// Set maps contrast names to contrasts for one resolved paradigm
type Set map[string]Contrast

// Names returns the contrast names in sorted order
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is present
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}
