package contrast

import (
	"gonum.org/v1/gonum/mat"
)

// Term is one weighted vector of a linear combination
type Term struct {
	Weight float64
	Vec    *mat.VecDense
}

// W pairs a weight with a vector
func W(weight float64, v *mat.VecDense) Term {
	return Term{Weight: weight, Vec: v}
}

// Combine returns sum(weight_i * vec_i). All vectors must share one length
// and at least one term is required.
func Combine(terms ...Term) *mat.VecDense {
	out := mat.NewVecDense(terms[0].Vec.Len(), nil)
	for _, t := range terms {
		out.AddScaledVec(out, t.Weight, t.Vec)
	}
	return out
}

// Sum adds vectors elementwise
func Sum(vs ...*mat.VecDense) *mat.VecDense {
	out := mat.VecDenseCopyOf(vs[0])
	for _, v := range vs[1:] {
		out.AddVec(out, v)
	}
	return out
}

// Sub returns a - b
func Sub(a, b *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(a.Len(), nil)
	out.SubVec(a, b)
	return out
}

// Scale returns f * v
func Scale(f float64, v *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	out.ScaleVec(f, v)
	return out
}

// Neg returns -v
func Neg(v *mat.VecDense) *mat.VecDense {
	return Scale(-1, v)
}
