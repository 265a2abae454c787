package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"leadscout/internal/browser"
	"leadscout/internal/config"
	"leadscout/internal/dedup"
	"leadscout/internal/digest"
	"leadscout/internal/filter"
	"leadscout/internal/mailer"
	"leadscout/internal/reporter"
	"leadscout/internal/scraper"
	"leadscout/internal/scraper/jobfeed"
	"leadscout/internal/scraper/linkedin"
	"leadscout/internal/search"
	"leadscout/utils"
)

// Pipeline runs one complete qualification pass: pick the day's query,
// extract candidates, score and rank them, deliver the digest, remember
// what was delivered. One instance per run.
type Pipeline struct {
	cfg *config.Config

	//DryRun goes through extraction and scoring but skips delivery and
	//leaves the seen cache untouched
	DryRun bool
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes the pass. Extraction failures do not bubble up as errors:
// the recipient gets an explained zero-lead digest instead, because a
// silent miss reads exactly like a quiet day on LinkedIn. Run only fails
// when no delivery channel could carry that message.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()
	log.Println("🚀 Starting lead qualification run...")

	variant := search.Rotate(p.cfg.Queries, started)
	seen := dedup.NewSeenCache(p.cfg.CachePath)

	var d digest.Digest
	candidates, err := p.extract(ctx, variant)
	if err != nil {
		log.Printf("❌ Extraction failed: %v", err)
		d = digest.Failed(variant, failureReason(err), started)
	} else {
		leads := p.score(candidates)
		ranked := filter.Rank(leads, seen)
		log.Printf("🏆 %d of %d scored leads made the digest.", len(ranked), len(leads))
		d = digest.New(ranked, variant, started)
	}

	if err := p.deliver(d, seen); err != nil {
		return err
	}

	log.Printf("🏁 Run finished in %s.", time.Since(started).Round(time.Second))
	return nil
}

// extract gathers candidates from LinkedIn and, when configured, the job
// feeds. A LinkedIn failure is fatal for extraction; feed trouble is not.
func (p *Pipeline) extract(ctx context.Context, query search.Variant) ([]scraper.Candidate, error) {
	manager, err := browser.NewManager(!p.cfg.Headed)
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	defer func() {
		if err := manager.Close(); err != nil {
			log.Printf("⚠️ Browser shutdown: %v", err)
		}
	}()

	cookies, err := browser.LoadCookies(p.cfg.CookiesPath)
	if err != nil {
		log.Printf("🍪 No cookies loaded (%v), will use credential login.", err)
	}

	browserCtx, err := manager.NewContext(cookies)
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	session := linkedin.NewSession(p.cfg, page, browser.NewHumanPacing(), utils.NewSnapshotDebugger(p.cfg.SnapshotsDir))
	candidates, err := session.Extract(ctx, query)
	if err != nil {
		return nil, err
	}

	//bonus sources: problems there never sink the run
	var bonus []scraper.Source
	if len(p.cfg.Feeds) > 0 {
		bonus = append(bonus, jobfeed.NewFeedSource(p.cfg))
	}
	for _, src := range bonus {
		log.Printf("▶️ Starting source: %s", src.Name())
		extra, err := src.Extract(ctx, query)
		if err != nil {
			log.Printf("⚠️ %s extraction failed: %v", src.Name(), err)
			continue
		}
		candidates = append(candidates, extra...)
	}

	return candidates, nil
}

// score runs every candidate through the scorer in extraction order and
// keeps the ones that clear the quality threshold.
func (p *Pipeline) score(candidates []scraper.Candidate) []filter.Lead {
	scorer := filter.NewScorer(p.cfg.Personas)

	var leads []filter.Lead
	for _, c := range candidates {
		lead, ok := scorer.Score(c)
		if !ok {
			continue
		}
		log.Printf("  ⭐ %d/%d %s", lead.QualityScore, filter.MaxScore, lead.URL)
		leads = append(leads, lead)
	}
	log.Printf("🔎 %d of %d candidates scored at or above threshold.", len(leads), len(candidates))
	return leads
}

// deliver pushes the digest out on every configured channel and records
// delivered leads in the seen cache. A single channel failing is logged
// and tolerated; all of them failing is an error, the digest went nowhere.
func (p *Pipeline) deliver(d digest.Digest, seen *dedup.SeenCache) error {
	if p.DryRun {
		log.Printf("🔬 Dry run: would deliver %q with %d leads.", d.Subject(), len(d.Leads))
		d.WriteRunLog(p.cfg.LogsDir)
		return nil
	}

	delivered := false

	if err := mailer.New(p.cfg).SendDigest(d); err != nil {
		log.Printf("⚠️ Email delivery failed: %v", err)
	} else {
		delivered = true
	}

	if p.cfg.TelegramEnabled() {
		tg, err := reporter.NewTelegramReporter(p.cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter unavailable: %v", err)
		} else if err := tg.SendDigest(d); err != nil {
			log.Printf("⚠️ Telegram delivery failed: %v", err)
		} else {
			delivered = true
		}
	}

	d.WriteRunLog(p.cfg.LogsDir)

	if !delivered {
		return errors.New("no delivery channel succeeded")
	}

	//only delivered leads count as seen, a lost digest must resurface them
	if seen != nil && len(d.Leads) > 0 {
		urls := make([]string, 0, len(d.Leads))
		for _, lead := range d.Leads {
			urls = append(urls, lead.URL)
		}
		seen.Add(urls)
	}
	return nil
}

// failureReason turns an extraction error into the sentence the digest
// shows the recipient.
func failureReason(err error) string {
	if errors.Is(err, linkedin.ErrAuthentication) {
		return err.Error()
	}
	return fmt.Sprintf("extraction failed: %v", err)
}
