package derive

import "github.com/pulsescore/seogen/models"

// Fixed option lists for supplementary copy. Selection is hash-then-modulo
// so pages vary without a database; collisions between seeds are fine
// because the output is cosmetic copy, not an identity.
var (
	cadenceOptions = []string{
		"weekly",
		"bi-weekly",
		"monthly",
		"every sprint",
		"quarterly",
	}
	ownerOptions = []string{
		"Customer Success Manager",
		"Head of Customer Success",
		"CS Operations Lead",
		"Account Manager",
		"RevOps Analyst",
	}
	dataSourceOptions = []string{
		"billing events",
		"CRM activity",
		"support ticket volume",
		"product usage logs",
		"NPS survey responses",
	}
	successMetricOptions = []string{
		"net revenue retention",
		"gross churn rate",
		"health score trend",
		"expansion revenue",
		"time to first value",
	}
	pitfallOptions = []string{
		"tracking too many metrics at once",
		"reacting to score drops instead of preventing them",
		"treating every account segment the same way",
		"ignoring leading indicators until renewal time",
		"letting stale data drive outreach decisions",
	}
)

// Per-list salts keep the five selections from moving in lockstep when
// option lists happen to share a length.
const (
	saltCadence       = 0
	saltOwner         = 3
	saltDataSource    = 7
	saltSuccessMetric = 11
	saltPitfall       = 13
)

// DeterministicSeed hashes the three identity fields of a page seed into a
// stable 32-bit value: a polynomial hash with multiplier 31, wrapping
// unsigned. It only ever indexes fixed option lists via modulo, so it needs
// reproducibility across processes, not uniformity.
func DeterministicSeed(family models.PageFamily, slug, keyword string) uint32 {
	var h uint32
	for _, s := range []string{string(family), slug, keyword} {
		for _, b := range []byte(s) {
			h = h*31 + uint32(b)
		}
	}
	return h
}

func pick(seed uint32, salt uint32, options []string) string {
	return options[(seed+salt)%uint32(len(options))]
}
