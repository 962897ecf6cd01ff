package core

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Short returns the first 12 hex digits, enough to tell reports apart
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// CatalogHash fingerprints the declared contrast names of a paradigm registry
type CatalogHash Hash

func (h CatalogHash) String() string { return Hash(h).String() }

// IsEmpty checks if the catalog hash is unset
func (h CatalogHash) IsEmpty() bool { return Hash(h).IsEmpty() }

// ComputeCatalogHash hashes paradigm ids and their declared names. Ids are
// visited in sorted order; name order within a paradigm is significant.
func ComputeCatalogHash(declared map[string][]string) CatalogHash {
	keys := make([]string, 0, len(declared))
	for k := range declared {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data strings.Builder
	for _, key := range keys {
		data.WriteString(key)
		data.WriteByte('=')
		data.WriteString(strings.Join(declared[key], ","))
		data.WriteByte(';')
	}

	return CatalogHash(NewHash([]byte(data.String())))
}
