package digest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout/internal/filter"
	"leadscout/internal/scraper"
	"leadscout/internal/search"
)

var testTime = time.Date(2026, time.August, 25, 7, 30, 0, 0, time.UTC)

func testQuery() search.Variant {
	return search.Variant{Index: 1, Text: `(salesforce OR "program manager") AND (contract OR freelance)`}
}

func testLeads() []filter.Lead {
	return []filter.Lead{
		{
			Candidate: scraper.Candidate{
				Author:     "Jane Recruiter",
				PostedText: "3h",
				Body:       "We are hiring a salesforce architect for a 6-12 months contract, remote within Europe.",
				URL:        "https://www.linkedin.com/posts/jane_hiring-activity-1",
				Source:     "LinkedIn",
			},
			QualityScore:   9,
			PersonaMatches: []string{"solution_architect(1)"},
			MatchedTerms:   []string{"hiring", "6-12 months", "senior", "experienced"},
		},
		{
			Candidate: scraper.Candidate{
				Author:     "Acme Talent",
				PostedText: "1d",
				Body:       strings.Repeat("Long project description. ", 30),
				URL:        "https://www.linkedin.com/posts/acme_contract-activity-2",
				Source:     "LinkedIn",
			},
			QualityScore: 6,
		},
	}
}

func TestRenderWithLeads(t *testing.T) {
	html, err := Render(New(testLeads(), testQuery(), testTime))
	require.NoError(t, err)

	assert.Contains(t, html, "Daily LinkedIn Job Leads - August 25, 2026")
	assert.Contains(t, html, "Found 2 quality opportunities")
	assert.Contains(t, html, "Lead #1")
	assert.Contains(t, html, "Lead #2")
	assert.Contains(t, html, "9/10")
	assert.Contains(t, html, "Jane Recruiter")
	assert.Contains(t, html, "Persona Matches: solution_architect(1)")
	assert.Contains(t, html, "https://www.linkedin.com/posts/jane_hiring-activity-1")
	assert.Contains(t, html, "Engagement Strategy")

	//only the first three key terms are displayed
	assert.Contains(t, html, "hiring, 6-12 months, senior")
	assert.NotContains(t, html, "experienced")

	//long bodies are previewed, not dumped
	assert.Contains(t, html, "...")
	assert.NotContains(t, html, strings.Repeat("Long project description. ", 30))
}

func TestRenderZeroLeads(t *testing.T) {
	html, err := Render(New(nil, testQuery(), testTime))
	require.NoError(t, err)

	assert.Contains(t, html, "No quality job leads found today")
	assert.Contains(t, html, "The search will continue tomorrow")
	assert.NotContains(t, html, "Lead #1")
	assert.NotContains(t, html, "Engagement Strategy")
}

func TestRenderFailure(t *testing.T) {
	html, err := Render(Failed(testQuery(), "authentication failed: checkpoint surface", testTime))
	require.NoError(t, err)

	assert.Contains(t, html, "authentication failed: checkpoint surface")
	assert.Contains(t, html, "failed before any leads")
	assert.NotContains(t, html, "Lead #1")
}

func TestRenderEscapesUntrustedText(t *testing.T) {
	leads := testLeads()
	leads[0].Author = `<script>alert("x")</script>`
	leads[0].Body = strings.Repeat("A ", 30) + `<img src=x onerror=alert(1)>`

	html, err := Render(New(leads, testQuery(), testTime))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<img src=x")
}

func TestPreviewBoundary(t *testing.T) {
	exact := strings.Repeat("x", previewChars)
	if got := preview(exact); got != exact {
		t.Errorf("preview changed a body at the boundary")
	}

	long := strings.Repeat("x", previewChars+40)
	got := preview(long)
	assert.Equal(t, previewChars+3, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestSubject(t *testing.T) {
	d := New(testLeads(), testQuery(), testTime)
	assert.Equal(t, "🎯 2 LinkedIn Opportunities - August 25 - Score 15/90", d.Subject())

	empty := New(nil, testQuery(), testTime)
	assert.Equal(t, "🎯 0 LinkedIn Opportunities - August 25 - Score 0/90", empty.Subject())

	failed := Failed(testQuery(), "browser did not start", testTime)
	assert.Equal(t, "⚠️ Lead search failed - August 25", failed.Subject())
}

func TestWriteRunLog(t *testing.T) {
	dir := t.TempDir()
	d := New(testLeads(), testQuery(), testTime)

	d.WriteRunLog(dir)

	path := filepath.Join(dir, "leads-2026-08-25.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Digest
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Leads, 2)
	assert.Equal(t, "https://www.linkedin.com/posts/jane_hiring-activity-1", got.Leads[0].URL)
	assert.Equal(t, 9, got.Leads[0].QualityScore)
}

func TestWriteRunLogSkipsEmptySuccess(t *testing.T) {
	dir := t.TempDir()
	New(nil, testQuery(), testTime).WriteRunLog(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteRunLogKeepsFailures(t *testing.T) {
	dir := t.TempDir()
	Failed(testQuery(), "navigation timeout", testTime).WriteRunLog(dir)

	data, err := os.ReadFile(filepath.Join(dir, "leads-2026-08-25.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "navigation timeout")
}
