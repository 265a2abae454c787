package filter

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"leadscout/internal/scraper"
)

// Lead is a candidate that cleared the acceptance threshold.
type Lead struct {
	scraper.Candidate
	QualityScore   int      //MinScore..MaxScore
	PersonaMatches []string //"persona(hits)" entries, persona name order
	MatchedTerms   []string //hiring/quality terms found, capped at maxMatchedTerms
}

// Scorer evaluates candidates against the fixed signal tables plus a
// configurable persona map.
type Scorer struct {
	personas     map[string][]string
	personaOrder []string
}

// NewScorer folds the persona keywords once up front and fixes their
// evaluation order, so identical input always produces identical output.
func NewScorer(personas map[string][]string) *Scorer {
	s := &Scorer{personas: make(map[string][]string, len(personas))}
	for name, keywords := range personas {
		folded := make([]string, len(keywords))
		for i, kw := range keywords {
			folded[i] = normalizeText(kw)
		}
		s.personas[name] = folded
		s.personaOrder = append(s.personaOrder, name)
	}
	sort.Strings(s.personaOrder)
	return s
}

// Score evaluates one candidate. ok=false means rejected: either an
// exclusion phrase hit, or the total stayed under MinScore. Exclusion wins
// no matter how strong the other signals are.
func (s *Scorer) Score(c scraper.Candidate) (Lead, bool) {
	text := normalizeText(c.CombinedText())

	for _, phrase := range exclusionPhrases {
		if strings.Contains(text, phrase) {
			return Lead{}, false
		}
	}

	score := 0
	var matchedTerms []string

	for _, cat := range signalCategories {
		hit := false
		for _, term := range cat.terms {
			if !strings.Contains(text, term) {
				continue
			}
			hit = true
			if !cat.collect {
				break
			}
			if len(matchedTerms) < maxMatchedTerms {
				matchedTerms = append(matchedTerms, term)
			}
		}
		if hit {
			score += cat.weight
		}
	}

	//Persona scoring: every distinct keyword hit counts double
	var personaMatches []string
	for _, name := range s.personaOrder {
		hits := 0
		for _, kw := range s.personas[name] {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > 0 {
			score += hits * 2
			personaMatches = append(personaMatches, fmt.Sprintf("%s(%d)", name, hits))
		}
	}

	if score < MinScore {
		return Lead{}, false
	}
	if score > MaxScore {
		score = MaxScore
	}

	return Lead{
		Candidate:      c,
		QualityScore:   score,
		PersonaMatches: personaMatches,
		MatchedTerms:   matchedTerms,
	}, true
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}
