package paradigm

import (
	"sort"

	"gocontrast/domain/core"
)

// checkNames compares produced keys with the expected names. Any divergence
// is a builder defect.
func checkNames(paradigm string, expected []string, produced []string) error {
	want := make(map[string]bool, len(expected))
	for _, name := range expected {
		want[name] = true
	}
	got := make(map[string]bool, len(produced))
	for _, name := range produced {
		got[name] = true
	}

	var missing, extra []string
	for name := range want {
		if !got[name] {
			missing = append(missing, name)
		}
	}
	for name := range got {
		if !want[name] {
			extra = append(extra, name)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return core.NewConsistencyError(paradigm, missing, extra)
}

func keys(vs vectors) []string {
	out := make([]string, 0, len(vs))
	for name := range vs {
		out = append(out, name)
	}
	return out
}
