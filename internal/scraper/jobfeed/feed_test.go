package jobfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout/internal/config"
	"leadscout/internal/scraper"
	"leadscout/internal/search"
)

func rssServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedExtractFiltersAndMaps(t *testing.T) {
	recentDate := time.Now().Add(-48 * time.Hour).Format(time.RFC1123Z)
	staleDate := time.Now().Add(-60 * 24 * time.Hour).Format(time.RFC1123Z)

	feedXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Remote Salesforce Jobs</title>
<item>
	<title>Senior Salesforce Consultant (Remote, EU)</title>
	<link>https://jobs.example.com/senior-salesforce-consultant</link>
	<guid>jobs-example-123</guid>
	<pubDate>%s</pubDate>
	<description><![CDATA[<p>We are <b>hiring</b> a senior Salesforce consultant for a remote contract engagement. Competitive daily rate.</p>]]></description>
</item>
<item>
	<title>Ancient Salesforce Role</title>
	<link>https://jobs.example.com/ancient</link>
	<pubDate>%s</pubDate>
	<description>Old posting for a salesforce consultant position that expired a long time ago.</description>
</item>
<item>
	<title>Gardening Tips Weekly</title>
	<link>https://jobs.example.com/gardening</link>
	<pubDate>%s</pubDate>
	<description>Purely horticultural newsletter content with nothing relevant inside it whatsoever.</description>
</item>
</channel></rss>`, recentDate, staleDate, recentDate)

	server := rssServer(t, feedXML)
	cfg := &config.Config{Feeds: []string{server.URL}}
	source := NewFeedSource(cfg)

	query := search.Variant{Index: 0, Text: `"Salesforce" AND ("hiring" OR "looking for")`}
	candidates, err := source.Extract(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "jobs-example-123", c.Identifier)
	assert.Equal(t, "Senior Salesforce Consultant (Remote, EU)", c.Title)
	assert.Equal(t, "Remote Salesforce Jobs", c.Author)
	assert.Equal(t, "https://jobs.example.com/senior-salesforce-consultant", c.URL)
	assert.Equal(t, "Feed", c.Source)
	assert.NotEmpty(t, c.PostedText)

	assert.Contains(t, c.Body, "hiring a senior Salesforce consultant")
	assert.NotContains(t, c.Body, "<p>")
	assert.NotContains(t, c.Body, "<b>")
	assert.True(t, c.Eligible())
}

func TestFeedSkipsDeadFeed(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	t.Cleanup(dead.Close)

	recentDate := time.Now().Add(-24 * time.Hour).Format(time.RFC1123Z)
	good := rssServer(t, fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Working Board</title>
<item>
	<title>Salesforce Architect Needed</title>
	<link>https://jobs.example.com/architect</link>
	<pubDate>%s</pubDate>
	<description>Hiring a Salesforce architect for a long-running remote contract with a European retail group.</description>
</item>
</channel></rss>`, recentDate))

	cfg := &config.Config{Feeds: []string{dead.URL, good.URL}}
	source := NewFeedSource(cfg)

	candidates, err := source.Extract(context.Background(), search.Variant{Text: `"Salesforce"`})

	require.NoError(t, err, "a dead feed must not fail the whole pass")
	require.Len(t, candidates, 1)
	assert.Equal(t, "Salesforce Architect Needed", candidates[0].Title)
}

func TestFeedPerFeedCap(t *testing.T) {
	recentDate := time.Now().Add(-12 * time.Hour).Format(time.RFC1123Z)

	var items strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&items, `<item>
	<title>Salesforce Contract Role %d</title>
	<link>https://jobs.example.com/role-%d</link>
	<pubDate>%s</pubDate>
	<description>Hiring a Salesforce specialist for contract engagement number %d, remote within Europe.</description>
</item>`, i, i, recentDate, i)
	}
	feedXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Busy Board</title>%s</channel></rss>`, items.String())

	server := rssServer(t, feedXML)
	source := NewFeedSource(&config.Config{Feeds: []string{server.URL}})

	candidates, err := source.Extract(context.Background(), search.Variant{Text: `"Salesforce"`})

	require.NoError(t, err)
	assert.Len(t, candidates, maxPerFeed)
}

func TestFeedEmptyConfig(t *testing.T) {
	source := NewFeedSource(&config.Config{})
	candidates, err := source.Extract(context.Background(), search.Variant{Text: `"Salesforce"`})

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRecentWindow(t *testing.T) {
	now := time.Now()
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	cases := []struct {
		name string
		item *gofeed.Item
		want bool
	}{
		{"fresh", &gofeed.Item{PublishedParsed: ago(24 * time.Hour)}, true},
		{"edge of window", &gofeed.Item{PublishedParsed: ago(13 * 24 * time.Hour)}, true},
		{"stale", &gofeed.Item{PublishedParsed: ago(15 * 24 * time.Hour)}, false},
		{"no date at all", &gofeed.Item{}, true},
		{"updated only", &gofeed.Item{UpdatedParsed: ago(48 * time.Hour)}, true},
		{"far future", &gofeed.Item{PublishedParsed: ago(-5 * 24 * time.Hour)}, false},
		{"slight future skew", &gofeed.Item{PublishedParsed: ago(-12 * time.Hour)}, true},
	}
	for _, c := range cases {
		if got := recent(c.item, now); got != c.want {
			t.Errorf("%s: recent() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMatchesQuery(t *testing.T) {
	c := scraper.Candidate{Title: "Senior Salesforce Consultant", Body: "Remote contract role."}

	if !matchesQuery(c, []string{"salesforce"}) {
		t.Error("expected a direct keyword hit")
	}
	if !matchesQuery(c, []string{"SALESFORCE"}) {
		t.Error("matching should ignore case")
	}
	if matchesQuery(c, []string{"kubernetes"}) {
		t.Error("unrelated keyword should not match")
	}
	if matchesQuery(c, []string{"or", "a"}) {
		t.Error("keywords shorter than three characters are noise and must be skipped")
	}
	if !matchesQuery(c, nil) {
		t.Error("no keywords means no filtering")
	}
}

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>We are <b>hiring</b> now.</p>", "We are hiring now."},
		{"plain text stays", "plain text stays"},
		{"  <div>\n  spread\n  over\n  lines  </div> ", "spread over lines"},
		{"", ""},
	}
	for _, c := range cases {
		if got := stripHTML(c.in); got != c.want {
			t.Errorf("stripHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
