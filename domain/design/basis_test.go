package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestElementaryBasisIsIdentity(t *testing.T) {
	cols := NewColumns("a", "b", "c")
	b := Elementary(cols)

	require.Equal(t, 3, b.Dim())
	require.Equal(t, 3, b.Len())
	for i, name := range cols.Names() {
		v, ok := b.Vec(name)
		require.True(t, ok, name)
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, v.AtVec(j), "%s[%d]", name, j)
		}
	}
}

func TestBasisVecReturnsCopy(t *testing.T) {
	b := Elementary(NewColumns("a", "b"))
	v, _ := b.Vec("a")
	v.SetVec(1, 42)

	again, _ := b.Vec("a")
	assert.True(t, mat.Equal(again, Unit(2, 0)))
}

func TestNuisanceFilteredDropsNuisance(t *testing.T) {
	cols := NewColumns("we_all_reference", "tx", "rz", "constant", "drift_3", "drift_13", "conf_0", "we_all_space_cue")
	b := NuisanceFiltered(cols)

	assert.Equal(t, []string{"we_all_reference", "we_all_space_cue"}, b.Names())
	assert.Equal(t, 8, b.Dim(), "vectors still span every design column")

	v, ok := b.Vec("we_all_space_cue")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.AtVec(7))
}

func TestCaseFoldedLowercasesKeys(t *testing.T) {
	cols := NewColumns("Face", "Shape", "constant")
	b := CaseFolded(cols)

	assert.True(t, b.Has("face", "shape", "constant"))
	assert.False(t, b.Has("Face"))
}

func TestBuildDispatchesOnKind(t *testing.T) {
	cols := NewColumns("A", "tx")
	assert.Equal(t, 2, Build(KindElementary, cols).Len())
	assert.Equal(t, 1, Build(KindNuisanceFiltered, cols).Len())
	assert.True(t, Build(KindCaseFolded, cols).Has("a"))
	assert.Equal(t, "nuisance_filtered", KindNuisanceFiltered.String())
}

func TestIntrospectColumns(t *testing.T) {
	assert.True(t, Introspect.IsIntrospect())
	assert.Equal(t, 0, Introspect.Len())
	assert.False(t, NewColumns().IsIntrospect())
}

func TestColumnsAreCopied(t *testing.T) {
	names := []string{"a", "b"}
	cols := NewColumns(names...)
	names[0] = "z"

	assert.Equal(t, "a", cols.At(0))
	i, ok := cols.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = cols.Index("z")
	assert.False(t, ok)
}
