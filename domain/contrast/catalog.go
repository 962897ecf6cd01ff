package contrast

// Dispatch rules a paradigm id can be matched by
const (
	RuleExact  = "exact"
	RulePrefix = "prefix"
	RuleSet    = "set"
)

// CatalogEntry describes one resolvable paradigm id
type CatalogEntry struct {
	ID      string   `json:"id"`
	Rule    string   `json:"rule"`
	Builder string   `json:"builder"`
	Basis   string   `json:"basis"`
	Names   []string `json:"names"`
}
