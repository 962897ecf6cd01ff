package paradigm

import (
	"gocontrast/domain/contrast"
	"gocontrast/domain/design"
)

// Short names for the contrast algebra; builders read like the formulas.
var (
	sum   = contrast.Sum
	sub   = contrast.Sub
	neg   = contrast.Neg
	scale = contrast.Scale
)

func elementary(id string, names []string, build BuildFunc) Entry {
	return Entry{ID: id, Names: names, Basis: design.KindElementary, build: build}
}

func caseFolded(id string, names []string, build BuildFunc) Entry {
	return Entry{ID: id, Names: names, Basis: design.KindCaseFolded, build: build}
}

func nuisanceFiltered(id string, names []string, build BuildFunc) Entry {
	return Entry{ID: id, Names: names, Basis: design.KindNuisanceFiltered, build: build}
}

// aliases builds an entry whose contrasts are the regressors of the same name
func aliases(id string, names ...string) Entry {
	return elementary(id, names, func(r *regressors) vectors {
		out := vectors{}
		r.alias(out, names...)
		return out
	})
}

// pairwise aliases a and b and adds a-b
func pairwise(id, a, b string) Entry {
	return elementary(id, []string{a, b, a + "-" + b}, func(r *regressors) vectors {
		return vectors{
			a:           r.get(a),
			b:           r.get(b),
			a + "-" + b: sub(r.get(a), r.get(b)),
		}
	})
}
