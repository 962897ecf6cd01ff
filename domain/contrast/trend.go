package contrast

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TrendWeights holds the orthogonal polynomial weightings for k ordered levels
type TrendWeights struct {
	Constant  []float64
	Linear    []float64
	Quadratic []float64
}

// NewTrendWeights builds constant (all ones), linear (evenly spaced on
// [-1, 1]) and quadratic (squared linear, mean-centred) weights.
func NewTrendWeights(k int) (TrendWeights, error) {
	if k < 2 {
		return TrendWeights{}, fmt.Errorf("trend contrast needs at least 2 levels, got %d", k)
	}

	constant := make([]float64, k)
	for i := range constant {
		constant[i] = 1
	}

	linear := floats.Span(make([]float64, k), -1, 1)

	quadratic := make([]float64, k)
	floats.MulTo(quadratic, linear, linear)
	mean, err := stats.Mean(quadratic)
	if err != nil {
		return TrendWeights{}, fmt.Errorf("centring quadratic weights: %w", err)
	}
	floats.AddConst(-mean, quadratic)

	return TrendWeights{Constant: constant, Linear: linear, Quadratic: quadratic}, nil
}

// Trend projects the stacked level vectors onto weights: sum_i w_i * level_i
func Trend(weights []float64, levels []*mat.VecDense) (*mat.VecDense, error) {
	if len(weights) != len(levels) {
		return nil, fmt.Errorf("trend has %d weights for %d levels", len(weights), len(levels))
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("trend has no levels")
	}

	n := levels[0].Len()
	stacked := mat.NewDense(len(levels), n, nil)
	for i, l := range levels {
		stacked.SetRow(i, mat.Col(nil, 0, l))
	}

	out := mat.NewVecDense(n, nil)
	out.MulVec(stacked.T(), mat.NewVecDense(len(weights), weights))
	return out, nil
}
