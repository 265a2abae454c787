package jobfeed

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"leadscout/internal/config"
	"leadscout/internal/scraper"
	"leadscout/internal/search"
)

const (
	maxPerFeed = 10
	//postings older than two weeks are stale even if the board keeps them up
	maxAge = 14 * 24 * time.Hour
	//future dates beyond clock skew are bogus
	futureSlack = 2 * 24 * time.Hour
)

// FeedSource pulls postings from configured RSS/Atom job boards as a second
// channel next to LinkedIn. Feeds cannot evaluate boolean search syntax, so
// items are filtered locally against the flattened query terms.
type FeedSource struct {
	cfg    *config.Config
	client *http.Client
}

func NewFeedSource(cfg *config.Config) *FeedSource {
	return &FeedSource{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *FeedSource) Name() string {
	return "Feed"
}

// Extract fetches every configured feed and keeps recent items that match
// the query. A dead feed is logged and skipped, never fatal: the feeds are
// a bonus channel and the run carries on without them.
func (f *FeedSource) Extract(ctx context.Context, query search.Variant) ([]scraper.Candidate, error) {
	keywords := query.Keywords()
	parser := gofeed.NewParser()
	now := time.Now()

	var candidates []scraper.Candidate
	for _, feedURL := range f.cfg.Feeds {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
		if err != nil {
			log.Printf("⚠️ Skipping feed %s: %v", feedURL, err)
			continue
		}
		resp, err := f.client.Do(req)
		if err != nil {
			log.Printf("⚠️ Skipping feed %s: %v", feedURL, err)
			continue
		}
		feed, err := parser.Parse(resp.Body)
		resp.Body.Close()
		if err != nil {
			log.Printf("⚠️ Skipping feed %s: %v", feedURL, err)
			continue
		}

		taken := 0
		for _, item := range feed.Items {
			if taken >= maxPerFeed {
				break
			}
			if !recent(item, now) {
				continue
			}
			candidate := toCandidate(item, feed.Title)
			if !matchesQuery(candidate, keywords) {
				continue
			}
			if !candidate.Eligible() {
				continue
			}
			candidates = append(candidates, candidate)
			taken++
		}
		log.Printf("  📡 %s: kept %d of %d items", feed.Title, taken, len(feed.Items))
	}

	if len(f.cfg.Feeds) > 0 {
		log.Printf("✅ Feeds contributed %d candidates.", len(candidates))
	}
	return candidates, nil
}

// toCandidate maps a feed item onto the shared candidate shape. Feed bodies
// arrive as HTML fragments, so descriptions are stripped to plain text.
func toCandidate(item *gofeed.Item, feedTitle string) scraper.Candidate {
	body := stripHTML(item.Description)
	if body == "" {
		body = stripHTML(item.Content)
	}

	author := feedTitle
	if item.Author != nil && strings.TrimSpace(item.Author.Name) != "" {
		author = strings.TrimSpace(item.Author.Name)
	}

	identifier := item.GUID
	if identifier == "" {
		identifier = item.Link
	}

	return scraper.Candidate{
		Identifier: identifier,
		Title:      strings.TrimSpace(item.Title),
		Author:     author,
		PostedText: strings.TrimSpace(item.Published),
		Body:       scraper.TruncateBody(body),
		URL:        strings.TrimSpace(item.Link),
		Source:     "Feed",
	}
}

// recent keeps items inside the posting window. Items without any parsed
// date pass: job boards often omit it and dropping them loses real leads.
func recent(item *gofeed.Item, now time.Time) bool {
	var pub time.Time
	if item.PublishedParsed != nil {
		pub = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		pub = *item.UpdatedParsed
	} else {
		return true
	}

	diff := now.Sub(pub)
	if diff > maxAge {
		return false
	}
	if diff < -futureSlack {
		return false
	}
	return true
}

// matchesQuery is a contains-any check against the flattened query terms.
func matchesQuery(c scraper.Candidate, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(c.CombinedText())
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if len(k) < 3 {
			continue
		}
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// stripHTML flattens an HTML fragment to whitespace-normalized text.
func stripHTML(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
