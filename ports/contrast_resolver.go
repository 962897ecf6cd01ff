package ports

import (
	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"
)

// ContrastResolverPort maps a paradigm id and its design columns to named contrasts
type ContrastResolverPort interface {
	// Resolve builds the contrast set. Passing design.Introspect yields placeholders.
	Resolve(id string, cols design.Columns) (contrast.Set, error)

	// Declared returns the contrast names the paradigm promises, aggregates excluded
	Declared(id string) ([]string, error)

	// Catalog lists every resolvable id
	Catalog() []contrast.CatalogEntry

	// Hash fingerprints the catalog
	Hash() core.CatalogHash
}
