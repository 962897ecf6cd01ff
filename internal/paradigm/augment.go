package paradigm

import (
	"gocontrast/domain/contrast"
	"gocontrast/domain/design"

	"gonum.org/v1/gonum/mat"
)

// addDerivatives stacks the unit vectors of every derivative column, in
// column order, under "derivatives". Returns false when there are none.
func addDerivatives(set contrast.Set, cols design.Columns) bool {
	return addStacked(set, contrast.Derivatives, cols, design.IsDerivative)
}

// addEffectsOfInterest stacks the unit vectors of the task columns under
// "effects_interest". With pinned names only those columns are stacked.
func addEffectsOfInterest(set contrast.Set, cols design.Columns, pinned []string) bool {
	keep := func(name string) bool {
		return !design.IsNuisance(name) && !design.IsDerivative(name)
	}
	if len(pinned) > 0 {
		allowed := make(map[string]bool, len(pinned))
		for _, name := range pinned {
			allowed[name] = true
		}
		keep = func(name string) bool { return allowed[name] }
	}
	return addStacked(set, contrast.EffectsInterest, cols, keep)
}

func addStacked(set contrast.Set, key string, cols design.Columns, keep func(string) bool) bool {
	if set.Has(key) {
		return false
	}
	var rows []*mat.VecDense
	for i := 0; i < cols.Len(); i++ {
		if keep(cols.At(i)) {
			rows = append(rows, design.Unit(cols.Len(), i))
		}
	}
	if len(rows) == 0 {
		return false
	}
	set[key] = contrast.Stack(rows)
	return true
}
