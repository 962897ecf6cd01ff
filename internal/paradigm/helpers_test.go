package paradigm

import (
	"errors"
	"testing"

	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"

	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *Registry {
	t.Helper()
	reg, err := Default()
	require.NoError(t, err)
	return reg
}

// requiredColumns discovers the minimal column list an id resolves against
// by adding whatever the last failure reported missing.
func requiredColumns(t *testing.T, reg *Registry, id string) []string {
	t.Helper()
	var cols []string
	have := map[string]bool{}
	for i := 0; i < 200; i++ {
		_, err := reg.Resolve(id, design.NewColumns(cols...))
		if err == nil {
			return cols
		}
		var missing *core.MissingRegressorError
		require.True(t, errors.As(err, &missing), "paradigm %s: %v", id, err)

		add := []string{missing.Quantity}
		if len(missing.Candidates) > 0 {
			add = missing.Candidates[0]
		}
		for _, name := range add {
			if !have[name] {
				have[name] = true
				cols = append(cols, name)
			}
		}
	}
	t.Fatalf("paradigm %s never resolved", id)
	return nil
}

// nonzero maps column names to the non-zero weights of a single-row contrast
func nonzero(t *testing.T, set contrast.Set, cols design.Columns, name string) map[string]float64 {
	t.Helper()
	c, ok := set[name]
	require.True(t, ok, "missing contrast %s", name)
	require.False(t, c.IsStacked(), "contrast %s is stacked", name)
	row := c.Row(0)
	require.Len(t, row, cols.Len())
	out := map[string]float64{}
	for i, w := range row {
		if w != 0 {
			out[cols.At(i)] = w
		}
	}
	return out
}

func declaredOnly(set contrast.Set) []string {
	var names []string
	for _, name := range set.Names() {
		if !contrast.IsReserved(name) {
			names = append(names, name)
		}
	}
	return names
}
