package paradigm

import (
	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"

	"gonum.org/v1/gonum/mat"
)

// regressors reads basis vectors for a builder. The first failure is kept
// and every later read returns a zero vector, so builders stay straight-line
// algebra and the error surfaces once the builder returns.
type regressors struct {
	basis *design.Basis
	err   error
}

func newRegressors(b *design.Basis) *regressors {
	return &regressors{basis: b}
}

func (r *regressors) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Err returns the first missing regressor, if any
func (r *regressors) Err() error {
	return r.err
}

func (r *regressors) zero() *mat.VecDense {
	n := r.basis.Dim()
	if n == 0 {
		// gonum rejects zero-length vectors; the value is discarded with the error
		n = 1
	}
	return mat.NewVecDense(n, nil)
}

func (r *regressors) get(name string) *mat.VecDense {
	if v, ok := r.basis.Vec(name); ok {
		return v
	}
	r.fail(core.NewMissingRegressorError(name))
	return r.zero()
}

func (r *regressors) sum(names ...string) *mat.VecDense {
	vs := make([]*mat.VecDense, len(names))
	for i, name := range names {
		vs[i] = r.get(name)
	}
	if len(vs) == 0 {
		return r.zero()
	}
	return contrast.Sum(vs...)
}

// mean is the arithmetic mean of the named regressors
func (r *regressors) mean(names ...string) *mat.VecDense {
	return contrast.Scale(1/float64(len(names)), r.sum(names...))
}

// first sums the first candidate whose regressors are all present. When
// none is, the failure names the quantity and every candidate tried.
func (r *regressors) first(quantity string, candidates ...[]string) *mat.VecDense {
	for _, c := range candidates {
		if r.basis.Has(c...) {
			return r.sum(c...)
		}
	}
	r.fail(core.NewMissingRegressorError(quantity, candidates...))
	return r.zero()
}

// alias copies regressors into out under their own names
func (r *regressors) alias(out vectors, names ...string) {
	for _, name := range names {
		out[name] = r.get(name)
	}
}

// trend builds constant, linear and quadratic contrasts over ordered levels
func (r *regressors) trend(levels ...string) (constant, linear, quadratic *mat.VecDense) {
	w, err := contrast.NewTrendWeights(len(levels))
	if err != nil {
		r.fail(err)
		return r.zero(), r.zero(), r.zero()
	}
	vs := make([]*mat.VecDense, len(levels))
	for i, name := range levels {
		vs[i] = r.get(name)
	}
	project := func(weights []float64) *mat.VecDense {
		v, err := contrast.Trend(weights, vs)
		if err != nil {
			r.fail(err)
			return r.zero()
		}
		return v
	}
	return project(w.Constant), project(w.Linear), project(w.Quadratic)
}
