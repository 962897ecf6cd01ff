package core

import (
	"testing"
)

// TestNewRunIDUniqueness tests that NewRunID generates unique identifiers
func TestNewRunIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[RunID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewRunID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestParseParadigmID tests paradigm ID parsing
func TestParseParadigmID(t *testing.T) {
	tests := []struct {
		input    string
		expected ParadigmID
		hasError bool
	}{
		{"hcp_motor", ParadigmID("hcp_motor"), false},
		{"VSTM", ParadigmID("VSTM"), false},
		{"  VSTM ", "", true},
		{"archi_standard ", "", true},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseParadigmID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

func TestComputeCatalogHashIsOrderInsensitiveAcrossParadigms(t *testing.T) {
	a := ComputeCatalogHash(map[string][]string{
		"stroop": {"congruent", "incongruent"},
		"bang":   {"talk", "no_talk"},
	})
	b := ComputeCatalogHash(map[string][]string{
		"bang":   {"talk", "no_talk"},
		"stroop": {"congruent", "incongruent"},
	})
	if a != b {
		t.Errorf("Expected equal hashes, got %s and %s", a, b)
	}

	c := ComputeCatalogHash(map[string][]string{
		"bang":   {"no_talk", "talk"},
		"stroop": {"congruent", "incongruent"},
	})
	if a == c {
		t.Error("Expected name order within a paradigm to change the hash")
	}
}
