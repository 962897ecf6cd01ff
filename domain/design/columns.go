package design

// Columns is the ordered list of design matrix regressor names for one
// modelled session. The position of a name is its column index. Names are
// assumed unique; that is the upstream design builder's contract.
type Columns struct {
	names      []string
	introspect bool
}

// Introspect stands in for a design matrix that does not exist yet. Resolving
// a paradigm against it yields the declared contrast names mapped to
// placeholders.
var Introspect = Columns{introspect: true}

// NewColumns copies names into an immutable column list
func NewColumns(names ...string) Columns {
	cp := make([]string, len(names))
	copy(cp, names)
	return Columns{names: cp}
}

// IsIntrospect reports whether c is the Introspect sentinel
func (c Columns) IsIntrospect() bool {
	return c.introspect
}

// Len returns the number of columns
func (c Columns) Len() int {
	return len(c.names)
}

// At returns the name of column i
func (c Columns) At(i int) string {
	return c.names[i]
}

// Names returns a copy of the column names in order
func (c Columns) Names() []string {
	cp := make([]string, len(c.names))
	copy(cp, c.names)
	return cp
}

// Index returns the position of name, or false when absent
func (c Columns) Index(name string) (int, bool) {
	for i, n := range c.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}
