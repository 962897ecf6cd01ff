package design

import (
	"fmt"
	"strings"
)

// DerivativeSuffix marks regressors modelling the temporal derivative of the
// hemodynamic response.
const DerivativeSuffix = "_derivative"

const (
	nDriftTerms    = 20
	nConfoundTerms = 20
)

var nuisancePrefixes = buildNuisancePrefixes()

func buildNuisancePrefixes() []string {
	prefixes := []string{"tx", "ty", "tz", "rx", "ry", "rz", "constant"}
	for i := 0; i < nDriftTerms; i++ {
		prefixes = append(prefixes, fmt.Sprintf("drift_%d", i))
	}
	for i := 0; i < nConfoundTerms; i++ {
		prefixes = append(prefixes, fmt.Sprintf("conf_%d", i))
	}
	return prefixes
}

// NuisancePrefixes returns the motion, constant, drift and confound prefixes
// excluded from interest contrasts.
func NuisancePrefixes() []string {
	cp := make([]string, len(nuisancePrefixes))
	copy(cp, nuisancePrefixes)
	return cp
}

// IsNuisance reports whether name starts with a nuisance prefix
func IsNuisance(name string) bool {
	for _, p := range nuisancePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// IsDerivative reports whether name is a derivative regressor. The bare
// suffix alone does not count.
func IsDerivative(name string) bool {
	return len(name) > len(DerivativeSuffix) && strings.HasSuffix(name, DerivativeSuffix)
}
