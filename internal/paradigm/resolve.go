package paradigm

import (
	"fmt"

	"gocontrast/domain/contrast"
	"gocontrast/domain/design"
)

// Resolve dispatches id and builds its contrast set over cols. With
// design.Introspect only the declared names are returned, as placeholders.
// On error no set is returned.
func (r *Registry) Resolve(id string, cols design.Columns) (contrast.Set, error) {
	e, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Resolve(cols)
}

// Resolve builds the entry's contrasts, checks them against the declared
// names and appends the aggregates.
func (e Entry) Resolve(cols design.Columns) (contrast.Set, error) {
	if cols.IsIntrospect() {
		set := make(contrast.Set, len(e.Names))
		for _, name := range e.Names {
			set[name] = contrast.Placeholder()
		}
		return set, nil
	}

	reg := newRegressors(design.Build(e.Basis, cols))
	vs := e.build(reg)
	if err := reg.Err(); err != nil {
		return nil, fmt.Errorf("paradigm %s: %w", e.ID, err)
	}
	if err := checkNames(e.ID, e.Names, keys(vs)); err != nil {
		return nil, err
	}

	set := make(contrast.Set, len(vs)+2)
	for name, v := range vs {
		set[name] = contrast.Vector(v)
	}

	expected := append([]string(nil), e.Names...)
	if addDerivatives(set, cols) {
		expected = append(expected, contrast.Derivatives)
	}
	if addEffectsOfInterest(set, cols, e.Interest) {
		expected = append(expected, contrast.EffectsInterest)
	}
	if err := checkNames(e.ID, expected, set.Names()); err != nil {
		return nil, err
	}
	return set, nil
}
