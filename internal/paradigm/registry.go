package paradigm

import (
	"fmt"
	"strings"

	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"

	"gonum.org/v1/gonum/mat"
)

// vectors is what a builder produces: one weight vector per declared name
type vectors map[string]*mat.VecDense

// BuildFunc computes a paradigm's contrasts from its basis. Missing
// regressors are recorded on r and surface after the builder returns.
type BuildFunc func(r *regressors) vectors

// Entry binds a paradigm id to its builder and its declared contrast names
type Entry struct {
	ID    string
	Names []string
	Basis design.Kind
	// Interest pins the rows of effects_interest to these regressors instead
	// of every non-nuisance, non-derivative column.
	Interest []string

	build BuildFunc
}

// PrefixRule selects a parametrised builder for every id starting with Prefix
type PrefixRule struct {
	Prefix string
	// Examples are full ids the rule accepts; they are validated at
	// construction and listed in the catalog.
	Examples []string
	Entry    func(suffix string) (Entry, error)
}

// SetRule maps several literal ids onto one shared builder
type SetRule struct {
	Members []string
	Entry   Entry
}

// Registry is the immutable dispatch table. Matching precedence is exact id,
// then prefix rules in order, then set rules in order.
type Registry struct {
	exact    map[string]Entry
	order    []string
	prefixes []PrefixRule
	sets     []SetRule
}

// NewRegistry validates the tables and freezes them
func NewRegistry(exact []Entry, prefixes []PrefixRule, sets []SetRule) (*Registry, error) {
	r := &Registry{
		exact:    make(map[string]Entry, len(exact)),
		order:    make([]string, 0, len(exact)),
		prefixes: append([]PrefixRule(nil), prefixes...),
		sets:     append([]SetRule(nil), sets...),
	}

	for _, e := range exact {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := r.exact[e.ID]; dup {
			return nil, fmt.Errorf("%w: paradigm %s registered twice", core.ErrInvalidRegistry, e.ID)
		}
		r.exact[e.ID] = e
		r.order = append(r.order, e.ID)
	}

	captured := make(map[string]bool)
	for i, s := range r.sets {
		if err := validateEntry(s.Entry); err != nil {
			return nil, err
		}
		reachable := false
		for _, m := range s.Members {
			if _, clash := r.exact[m]; clash {
				return nil, fmt.Errorf("%w: set member %s shadows an exact paradigm", core.ErrInvalidRegistry, m)
			}
			if !captured[m] {
				reachable = true
				captured[m] = true
			}
		}
		if !reachable {
			return nil, fmt.Errorf("%w: set rule %d (%s) is shadowed by earlier rules", core.ErrInvalidRegistry, i, s.Entry.ID)
		}
	}

	for _, p := range r.prefixes {
		if p.Prefix == "" || p.Entry == nil {
			return nil, fmt.Errorf("%w: incomplete prefix rule %q", core.ErrInvalidRegistry, p.Prefix)
		}
		for _, id := range p.Examples {
			if !strings.HasPrefix(id, p.Prefix) {
				return nil, fmt.Errorf("%w: example %s does not start with %s", core.ErrInvalidRegistry, id, p.Prefix)
			}
			e, err := p.Entry(id[len(p.Prefix):])
			if err != nil {
				return nil, fmt.Errorf("%w: example %s: %v", core.ErrInvalidRegistry, id, err)
			}
			if err := validateEntry(e); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func validateEntry(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("%w: entry without id", core.ErrInvalidRegistry)
	}
	if e.build == nil {
		return fmt.Errorf("%w: paradigm %s has no builder", core.ErrInvalidRegistry, e.ID)
	}
	seen := make(map[string]bool, len(e.Names))
	for _, name := range e.Names {
		if contrast.IsReserved(name) {
			return fmt.Errorf("%w: paradigm %s declares %s", core.ErrReservedContrastName, e.ID, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: paradigm %s declares %s twice", core.ErrInvalidRegistry, e.ID, name)
		}
		seen[name] = true
	}
	return nil
}

// Lookup finds the entry an id dispatches to
func (r *Registry) Lookup(id string) (Entry, error) {
	if e, ok := r.exact[id]; ok {
		return e, nil
	}
	for _, p := range r.prefixes {
		if !strings.HasPrefix(id, p.Prefix) {
			continue
		}
		e, err := p.Entry(id[len(p.Prefix):])
		if err != nil {
			return Entry{}, fmt.Errorf("%w: %q: %v", core.ErrUnknownParadigm, id, err)
		}
		return e, nil
	}
	for _, s := range r.sets {
		for _, m := range s.Members {
			if m == id {
				return s.Entry, nil
			}
		}
	}
	return Entry{}, core.NewUnknownParadigmError(id)
}

// Declared returns the contrast names the id's builder declares
func (r *Registry) Declared(id string) ([]string, error) {
	e, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), e.Names...), nil
}

// Catalog lists every exact id, every prefix example and every set member
// that reaches its rule, in registration order.
func (r *Registry) Catalog() []contrast.CatalogEntry {
	var out []contrast.CatalogEntry
	add := func(id, rule string, e Entry) {
		out = append(out, contrast.CatalogEntry{
			ID:      id,
			Rule:    rule,
			Builder: e.ID,
			Basis:   e.Basis.String(),
			Names:   append([]string(nil), e.Names...),
		})
	}

	for _, id := range r.order {
		add(id, contrast.RuleExact, r.exact[id])
	}
	for _, p := range r.prefixes {
		for _, id := range p.Examples {
			e, err := p.Entry(id[len(p.Prefix):])
			if err != nil {
				continue
			}
			add(id, contrast.RulePrefix, e)
		}
	}
	seen := make(map[string]bool)
	for _, s := range r.sets {
		for _, m := range s.Members {
			if seen[m] {
				continue
			}
			seen[m] = true
			add(m, contrast.RuleSet, s.Entry)
		}
	}
	return out
}

// IDs returns every id listed by Catalog
func (r *Registry) IDs() []string {
	cat := r.Catalog()
	ids := make([]string, len(cat))
	for i, c := range cat {
		ids[i] = c.ID
	}
	return ids
}

// Hash fingerprints the catalog
func (r *Registry) Hash() core.CatalogHash {
	declared := make(map[string][]string)
	for _, c := range r.Catalog() {
		declared[c.ID] = c.Names
	}
	return core.ComputeCatalogHash(declared)
}
