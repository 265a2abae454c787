// Define an interface for all lead sources
// Ensure consistency

package scraper

import (
	"context"
	"strings"

	"leadscout/internal/search"
)

const (
	//MaxBodyChars bounds how much post text gets carried through the pipeline
	MaxBodyChars = 500
	//MinBodyChars is the eligibility floor; shorter records carry too little signal to score
	MinBodyChars = 50
)

// Candidate is one extracted record, not yet scored.
type Candidate struct {
	Identifier string //stable per-record id from the page, or a positional fallback
	Title      string
	Author     string
	Location   string
	PostedText string //timestamp as rendered on the page ("3h", "2 days ago")
	Body       string //container text, capped at MaxBodyChars
	URL        string
	Source     string //name of the Source that produced it
}

// Eligible reports whether the record is worth scoring: a detail URL plus
// a minimum of body text. Ineligible records are dropped at extraction.
func (c Candidate) Eligible() bool {
	return c.URL != "" && len([]rune(c.Body)) >= MinBodyChars
}

// CombinedText is the scoring haystack: the textual fields joined with
// spaces so phrase matching can hit any of them.
func (c Candidate) CombinedText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{c.Title, c.Author, c.Location, c.Body} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// TruncateBody cuts s to MaxBodyChars characters, multibyte-safe.
func TruncateBody(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxBodyChars {
		return s
	}
	return string(runes[:MaxBodyChars])
}

//Source defines the interface that all lead sources must implement
type Source interface {
	//Extract pulls candidate records for the day's query
	Extract(ctx context.Context, query search.Variant) ([]Candidate, error)

	//Name is the source name (LinkedIn, Feed, ...)
	Name() string
}
