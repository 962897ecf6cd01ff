package paradigm

import (
	"fmt"
	"strconv"
	"strings"
)

// numerosity builds constant, linear and quadratic trends over the
// response_num_1..k regressors (Knops protocols).
func numerosity(id, prefix string, k int) Entry {
	names := []string{prefix + "_linear", prefix + "_constant", prefix + "_quadratic"}
	levels := make([]string, k)
	for i := range levels {
		levels[i] = "response_num_" + strconv.Itoa(i+1)
	}
	return elementary(id, names, func(r *regressors) vectors {
		constant, linear, quadratic := r.trend(levels...)
		return vectors{
			prefix + "_constant":  constant,
			prefix + "_linear":    linear,
			prefix + "_quadratic": quadratic,
		}
	})
}

var (
	vstm        = numerosity("VSTM", "vstm", 6)
	enumeration = numerosity("enumeration", "enumeration", 8)
)

const preferencePrefix = "preference"

var preferenceDomains = []string{"painting", "house", "face", "food"}

// preference resolves the suffix of a preference_<domain> id. The domain
// follows a one-character separator and may carry a plural "s".
func preference(suffix string) (Entry, error) {
	if len(suffix) < 2 {
		return Entry{}, fmt.Errorf("missing preference domain")
	}
	domain := strings.TrimSuffix(suffix[1:], "s")
	known := false
	for _, d := range preferenceDomains {
		if d == domain {
			known = true
			break
		}
	}
	if !known {
		return Entry{}, fmt.Errorf("preference domain %q not in %v", domain, preferenceDomains)
	}
	// the ratings model supplies the trend regressors directly
	return aliases(preferencePrefix+"_"+domain,
		domain+"_linear", domain+"_constant", domain+"_quadratic"), nil
}

var preferenceRule = PrefixRule{
	Prefix: preferencePrefix,
	Examples: []string{
		"preference_paintings", "preference_houses", "preference_faces", "preference_food",
	},
	Entry: preference,
}
