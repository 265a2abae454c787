package filter

import "sort"

// MaxLeads caps how many leads one digest carries.
const MaxLeads = 9

// Seen reports whether a lead URL was already delivered on a previous run.
// A nil Seen disables suppression.
type Seen interface {
	Has(url string) bool
}

// Rank orders leads best-first and trims the list for the digest. The sort
// is stable, so equal scores keep their extraction order. Already seen
// leads are dropped before the cap, letting fresh ones take their place.
func Rank(leads []Lead, seen Seen) []Lead {
	ranked := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if seen != nil && seen.Has(l.URL) {
			continue
		}
		ranked = append(ranked, l)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})

	if len(ranked) > MaxLeads {
		ranked = ranked[:MaxLeads]
	}
	return ranked
}
