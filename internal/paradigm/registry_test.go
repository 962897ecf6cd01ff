package paradigm

import (
	"errors"
	"testing"

	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(id string, names ...string) Entry {
	return aliases(id, names...)
}

func TestDefaultRegistryIsValid(t *testing.T) {
	reg := mustDefault(t)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, reg, again)

	ids := reg.IDs()
	assert.Len(t, ids, 55+4+6)
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate catalog id %s", id)
		seen[id] = true
	}
	for _, id := range []string{"archi_standard", "hcp_wm", "language", "clips_trn", "Scene",
		"preference_paintings", "wedge", "exp_ring"} {
		assert.True(t, seen[id], "catalog lacks %s", id)
	}
}

func TestCatalogRules(t *testing.T) {
	reg := mustDefault(t)
	byID := map[string]contrast.CatalogEntry{}
	for _, c := range reg.Catalog() {
		byID[c.ID] = c
	}

	assert.Equal(t, "exact", byID["archi_social"].Rule)
	assert.Equal(t, "case_folded", byID["hcp_motor"].Basis)
	assert.Equal(t, "nuisance_filtered", byID["MTTWE"].Basis)

	assert.Equal(t, "prefix", byID["preference_houses"].Rule)
	assert.Equal(t, []string{"house_linear", "house_constant", "house_quadratic"}, byID["preference_houses"].Names)

	assert.Equal(t, "set", byID["wedge"].Rule)
	assert.Equal(t, "wedge", byID["wedge"].Builder)
	assert.Equal(t, "retino", byID["wedge_clock"].Builder)
	assert.Equal(t, []string{"cos", "sin"}, byID["cont_ring"].Names)
}

func TestCatalogHashIsStable(t *testing.T) {
	reg := mustDefault(t)
	assert.Equal(t, reg.Hash(), reg.Hash())
	assert.False(t, reg.Hash().IsEmpty())
}

func TestLookupUnknown(t *testing.T) {
	reg := mustDefault(t)
	for _, id := range []string{"", "nonexistent", "ARCHI_STANDARD", "archi_standard ", "preference",
		"preference_", "preference_cars", "preferences_food"} {
		_, err := reg.Lookup(id)
		assert.True(t, core.IsUnknownParadigm(err), "id %q: %v", id, err)

		set, err := reg.Resolve(id, design.Introspect)
		assert.Error(t, err)
		assert.Nil(t, set)
	}
}

func TestPreferenceDomains(t *testing.T) {
	reg := mustDefault(t)
	tests := []struct {
		id     string
		domain string
	}{
		{"preference_paintings", "painting"},
		{"preference_painting", "painting"},
		{"preference_houses", "house"},
		{"preference_faces", "face"},
		{"preference_food", "food"},
		{"preference-food", "food"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			names, err := reg.Declared(tt.id)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.domain + "_linear", tt.domain + "_constant", tt.domain + "_quadratic"}, names)
		})
	}
}

func TestRetinotopyDispatch(t *testing.T) {
	reg := mustDefault(t)
	tests := map[string]string{
		"wedge":       "wedge",
		"ring":        "ring",
		"wedge_anti":  "retino",
		"wedge_clock": "retino",
		"cont_ring":   "retino",
		"exp_ring":    "retino",
	}
	for id, builder := range tests {
		e, err := reg.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, builder, e.ID, id)
	}
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	tests := []struct {
		name     string
		exact    []Entry
		prefixes []PrefixRule
		sets     []SetRule
		want     error
	}{
		{
			name:  "reserved derivatives",
			exact: []Entry{stub("a", "x", "derivatives")},
			want:  core.ErrReservedContrastName,
		},
		{
			name:  "reserved effects_interest",
			exact: []Entry{stub("a", "effects_interest")},
			want:  core.ErrReservedContrastName,
		},
		{
			name:  "duplicate declared name",
			exact: []Entry{stub("a", "x", "x")},
			want:  core.ErrInvalidRegistry,
		},
		{
			name:  "duplicate id",
			exact: []Entry{stub("a", "x"), stub("a", "y")},
			want:  core.ErrInvalidRegistry,
		},
		{
			name:  "missing builder",
			exact: []Entry{{ID: "a", Names: []string{"x"}}},
			want:  core.ErrInvalidRegistry,
		},
		{
			name:  "set member shadows exact id",
			exact: []Entry{stub("a", "x")},
			sets:  []SetRule{{Members: []string{"a", "b"}, Entry: stub("shared", "y")}},
			want:  core.ErrInvalidRegistry,
		},
		{
			name: "broad set before narrow set",
			sets: []SetRule{
				{Members: []string{"wedge", "ring"}, Entry: stub("broad", "y")},
				{Members: []string{"wedge"}, Entry: stub("narrow", "z")},
			},
			want: core.ErrInvalidRegistry,
		},
		{
			name: "reserved name in set entry",
			sets: []SetRule{{Members: []string{"b"}, Entry: stub("shared", "derivatives")}},
			want: core.ErrReservedContrastName,
		},
		{
			name: "bad prefix example",
			prefixes: []PrefixRule{{
				Prefix:   "preference",
				Examples: []string{"preference_cars"},
				Entry:    preference,
			}},
			want: core.ErrInvalidRegistry,
		},
		{
			name:     "incomplete prefix rule",
			prefixes: []PrefixRule{{Prefix: "p"}},
			want:     core.ErrInvalidRegistry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry(tt.exact, tt.prefixes, tt.sets)
			assert.Nil(t, reg)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, core.IsDefect(err))
		})
	}
}

func TestPrecedenceExactBeforePrefix(t *testing.T) {
	reg, err := NewRegistry(
		[]Entry{stub("preference_special", "special")},
		[]PrefixRule{preferenceRule},
		nil,
	)
	require.NoError(t, err)

	names, err := reg.Declared("preference_special")
	require.NoError(t, err)
	assert.Equal(t, []string{"special"}, names)

	names, err = reg.Declared("preference_faces")
	require.NoError(t, err)
	assert.Equal(t, []string{"face_linear", "face_constant", "face_quadratic"}, names)
}

func TestDeclaredReturnsCopy(t *testing.T) {
	reg := mustDefault(t)
	names, err := reg.Declared("bang")
	require.NoError(t, err)
	names[0] = "mutated"

	again, err := reg.Declared("bang")
	require.NoError(t, err)
	assert.Equal(t, []string{"talk", "no_talk", "talk-no_talk"}, again)
}
