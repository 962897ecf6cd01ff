package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestTrendWeights(t *testing.T) {
	for _, k := range []int{2, 3, 6, 8} {
		w, err := NewTrendWeights(k)
		require.NoError(t, err)

		assert.Len(t, w.Constant, k)
		assert.Equal(t, float64(k), floats.Sum(w.Constant))
		assert.Equal(t, -1.0, w.Linear[0])
		assert.InDelta(t, 1.0, w.Linear[k-1], 1e-12)
		assert.InDelta(t, 0, floats.Sum(w.Linear), 1e-10, "k=%d", k)
		assert.InDelta(t, 0, floats.Sum(w.Quadratic), 1e-10, "k=%d", k)
	}
}

func TestTrendWeightsSixLevels(t *testing.T) {
	w, err := NewTrendWeights(6)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{-1, -0.6, -0.2, 0.2, 0.6, 1}, w.Linear, 1e-12)
	// mean of squares = (1+0.36+0.04)*2/6
	mean := 2.8 / 6
	assert.InDeltaSlice(t, []float64{1 - mean, 0.36 - mean, 0.04 - mean, 0.04 - mean, 0.36 - mean, 1 - mean}, w.Quadratic, 1e-12)
}

func TestTrendWeightsRejectsSingleLevel(t *testing.T) {
	_, err := NewTrendWeights(1)
	assert.Error(t, err)
}

func TestTrendProjectsLevels(t *testing.T) {
	levels := []*mat.VecDense{vec(0, 1, 0, 0), vec(0, 0, 1, 0), vec(0, 0, 0, 1)}
	got, err := Trend([]float64{-1, 0, 1}, levels)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, 0, 1}, mat.Col(nil, 0, got))

	_, err = Trend([]float64{1}, levels)
	assert.Error(t, err)
}
