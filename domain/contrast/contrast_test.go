package contrast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func vec(data ...float64) *mat.VecDense {
	return mat.NewVecDense(len(data), data)
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()
	assert.True(t, p.IsPlaceholder())
	assert.Equal(t, 0, p.Rows())
	assert.Nil(t, p.Matrix())
	assert.True(t, p.Equal(Contrast{}))
	assert.False(t, p.Equal(Vector(vec(1, 0))))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestVectorContrast(t *testing.T) {
	c := Vector(vec(1, -1, 0))
	assert.False(t, c.IsStacked())
	assert.Equal(t, 1, c.Rows())
	r, n := c.Matrix().Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1, -1, 0}, c.Row(0))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,-1,0]`, string(out))
}

func TestStackContrast(t *testing.T) {
	c := Stack([]*mat.VecDense{vec(1, 0, 0), vec(0, 0, 1)})
	assert.True(t, c.IsStacked())
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 0, 1}}, c.RawRows())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,0,0],[0,0,1]]`, string(out))

	assert.True(t, Stack(nil).IsPlaceholder())
}

func TestOneRowStackIsNotAVector(t *testing.T) {
	s := Stack([]*mat.VecDense{vec(0, 1)})
	v := Vector(vec(0, 1))
	assert.False(t, s.Equal(v))
	assert.True(t, s.Equal(Stack([]*mat.VecDense{vec(0, 1)})))
}

func TestSetNames(t *testing.T) {
	s := Set{"b": Placeholder(), "a": Placeholder()}
	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
}

func TestReservedNames(t *testing.T) {
	assert.True(t, IsReserved(Derivatives))
	assert.True(t, IsReserved(EffectsInterest))
	assert.False(t, IsReserved("cos"))
}

func TestFingerprintTracksBits(t *testing.T) {
	a := Set{"x": Vector(vec(1, -1)), "y": Stack([]*mat.VecDense{vec(0, 1)})}
	b := Set{"y": Stack([]*mat.VecDense{vec(0, 1)}), "x": Vector(vec(1, -1))}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	d := Set{"x": Vector(vec(1, -0.9999999999999999)), "y": Stack([]*mat.VecDense{vec(0, 1)})}
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())

	e := Set{"x": Vector(vec(1, -1)), "y": Vector(vec(0, 1))}
	assert.NotEqual(t, a.Fingerprint(), e.Fingerprint(), "shape is part of the fingerprint")
}
