package design

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kind selects how a basis is derived from the design columns
type Kind int

const (
	// KindElementary maps every column to its unit vector
	KindElementary Kind = iota
	// KindNuisanceFiltered drops motion, constant, drift and confound columns
	KindNuisanceFiltered
	// KindCaseFolded keys unit vectors by lower-cased column name
	KindCaseFolded
)

func (k Kind) String() string {
	switch k {
	case KindElementary:
		return "elementary"
	case KindNuisanceFiltered:
		return "nuisance_filtered"
	case KindCaseFolded:
		return "case_folded"
	default:
		return "unknown"
	}
}

// Basis maps regressor names to standard basis vectors of R^n, n being the
// number of design columns. A basis is built per resolution and never shared.
type Basis struct {
	n       int
	vectors map[string]*mat.VecDense
}

// Build derives the basis of the requested kind
func Build(kind Kind, cols Columns) *Basis {
	switch kind {
	case KindNuisanceFiltered:
		return NuisanceFiltered(cols)
	case KindCaseFolded:
		return CaseFolded(cols)
	default:
		return Elementary(cols)
	}
}

// Elementary maps each column name to its unit vector
func Elementary(cols Columns) *Basis {
	return newBasis(cols, func(name string) (string, bool) { return name, true })
}

// NuisanceFiltered is Elementary without the nuisance regressors
func NuisanceFiltered(cols Columns) *Basis {
	return newBasis(cols, func(name string) (string, bool) { return name, !IsNuisance(name) })
}

// CaseFolded keys unit vectors by lower-cased name. When two columns fold
// to the same key the later column wins.
func CaseFolded(cols Columns) *Basis {
	return newBasis(cols, func(name string) (string, bool) { return strings.ToLower(name), true })
}

func newBasis(cols Columns, key func(string) (string, bool)) *Basis {
	b := &Basis{n: cols.Len(), vectors: make(map[string]*mat.VecDense, cols.Len())}
	for i, name := range cols.names {
		k, keep := key(name)
		if !keep {
			continue
		}
		b.vectors[k] = Unit(b.n, i)
	}
	return b
}

// Unit returns the i-th standard basis vector of R^n
func Unit(n, i int) *mat.VecDense {
	v := mat.NewVecDense(n, nil)
	v.SetVec(i, 1)
	return v
}

// Dim returns n, the length of every vector in the basis
func (b *Basis) Dim() int {
	return b.n
}

// Len returns the number of named vectors
func (b *Basis) Len() int {
	return len(b.vectors)
}

// Has reports whether every name is present
func (b *Basis) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := b.vectors[name]; !ok {
			return false
		}
	}
	return true
}

// Vec returns a copy of the unit vector for name
func (b *Basis) Vec(name string) (*mat.VecDense, bool) {
	v, ok := b.vectors[name]
	if !ok {
		return nil, false
	}
	return mat.VecDenseCopyOf(v), true
}

// Names returns the basis keys in sorted order
func (b *Basis) Names() []string {
	names := make([]string, 0, len(b.vectors))
	for name := range b.vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
