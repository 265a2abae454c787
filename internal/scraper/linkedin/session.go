package linkedin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/playwright-community/playwright-go"

	"leadscout/internal/browser"
	"leadscout/internal/config"
	"leadscout/internal/scraper"
	"leadscout/internal/search"
	"leadscout/utils"
)

// State tracks where a session is in its lifecycle. Transitions only move
// forward; Failed is terminal and every later call is rejected.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Searching
	Extracted
	Failed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Searching:
		return "searching"
	case Extracted:
		return "extracted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrAuthentication marks failures that happened before an authenticated
// surface was reached. The pipeline checks for it to skip the search and
// send a zero-lead digest instead.
var ErrAuthentication = errors.New("linkedin authentication failed")

const (
	loginURL = "https://www.linkedin.com/login"
	feedURL  = "https://www.linkedin.com/feed/"
	//content search, newest first
	searchURLFormat = `https://www.linkedin.com/search/results/content/?keywords=%s&origin=GLOBAL_SEARCH_HEADER&sortBy="date_posted"`
	//filters out job seekers advertising themselves before scoring ever sees them
	notClause = ` NOT ("open to work" OR "opentowork" OR "seeking opportunities" OR "#opentowork")`

	maxPosts    = 20
	scrollSteps = 3
)

//Locator alternatives per field, tried in order. First non-empty text wins,
//a full miss just leaves the field blank. LinkedIn renames these classes
//often enough that every slot keeps the previous generation as fallback.
var (
	postContainers = "div[data-id]"

	titleLocators = []string{
		".update-components-actor__description",
		".entity-result__title-text",
	}
	authorLocators = []string{
		".update-components-actor__name",
		".feed-shared-actor__name",
	}
	locationLocators = []string{
		".entity-result__secondary-subtitle",
		".update-components-actor__location",
	}
	timestampLocators = []string{
		"span.update-components-actor__sub-description",
		".feed-shared-actor__sub-description",
	}
	linkLocators = []string{
		`a[href*="/posts/"]`,
		`a[href*="/feed/update/"]`,
	}
)

// Session drives one authenticated LinkedIn visit: log in, run the content
// search, pull post cards. It owns a single page for its whole lifetime and
// is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	page  playwright.Page
	pace  browser.PacingPolicy
	debug *utils.SnapshotDebugger
	state State
}

func NewSession(cfg *config.Config, page playwright.Page, pace browser.PacingPolicy, debug *utils.SnapshotDebugger) *Session {
	return &Session{
		cfg:   cfg,
		page:  page,
		pace:  pace,
		debug: debug,
		state: Unauthenticated,
	}
}

func (s *Session) Name() string {
	return "LinkedIn"
}

// State reports the machine position, mostly for logging and tests.
func (s *Session) State() State {
	return s.state
}

// Extract runs the whole lifecycle for one query variant. Any stage failure
// parks the session in Failed and surfaces the error; authentication
// failures wrap ErrAuthentication so the caller can tell them apart.
func (s *Session) Extract(ctx context.Context, query search.Variant) ([]scraper.Candidate, error) {
	if err := s.Login(ctx); err != nil {
		return nil, err
	}
	return s.Search(ctx, query)
}

// Login takes the session to an authenticated surface, preferring restored
// cookies over typing credentials.
func (s *Session) Login(ctx context.Context) error {
	if s.state == Failed {
		return fmt.Errorf("%w: session already failed", ErrAuthentication)
	}
	if s.state >= Authenticated {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return s.fail("login_cancelled", fmt.Errorf("%w: %v", ErrAuthentication, err))
	}

	s.state = Authenticating

	//cookie shortcut: an intact li_at session lands straight on the feed
	if s.restoredSession() {
		s.state = Authenticated
		return nil
	}

	log.Println("🔐 Navigating to LinkedIn login...")
	if _, err := s.page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return s.fail("login_navigation", fmt.Errorf("%w: login page did not load: %v", ErrAuthentication, err))
	}
	s.pace.Pause(browser.Navigate)

	if err := s.page.Fill(`input[name="session_key"]`, s.cfg.LinkedInEmail); err != nil {
		return s.fail("login_email_field", fmt.Errorf("%w: email field not found: %v", ErrAuthentication, err))
	}
	s.pace.Pause(browser.Input)

	if err := s.page.Fill(`input[name="session_password"]`, s.cfg.LinkedInPassword); err != nil {
		return s.fail("login_password_field", fmt.Errorf("%w: password field not found: %v", ErrAuthentication, err))
	}
	s.pace.Pause(browser.Input)

	if err := s.page.Click(`button[type="submit"]`); err != nil {
		return s.fail("login_submit", fmt.Errorf("%w: submit button not found: %v", ErrAuthentication, err))
	}
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(30000),
	}); err != nil {
		return s.fail("login_redirect", fmt.Errorf("%w: post-login navigation did not settle: %v", ErrAuthentication, err))
	}
	s.pace.Pause(browser.Navigate)

	current := s.page.URL()
	if isChallengeSurface(current) {
		//checkpoints are never solved automatically, a human sorts it out
		return s.fail("login_checkpoint", fmt.Errorf("%w: verification checkpoint at %s", ErrAuthentication, current))
	}
	if isAuthSurface(current) {
		return s.fail("login_rejected", fmt.Errorf("%w: still on login surface at %s", ErrAuthentication, current))
	}

	s.state = Authenticated
	log.Println("✅ LinkedIn login confirmed.")
	return nil
}

// Search loads the content search results for the query and extracts post
// cards. Requires a previous successful Login.
func (s *Session) Search(ctx context.Context, query search.Variant) ([]scraper.Candidate, error) {
	if s.state != Authenticated {
		return nil, s.fail("search_order", fmt.Errorf("search requires an authenticated session, state is %s", s.state))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.fail("search_cancelled", err)
	}

	s.state = Searching

	searchURL := buildSearchURL(query)
	log.Printf("🔑 Using query variation #%d: %s", query.Index+1, query.Label())
	log.Printf("  🌐 Visiting: %s", searchURL)

	if _, err := s.page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, s.fail("search_navigation", fmt.Errorf("content search did not load: %w", err))
	}
	//networkidle rarely fires cleanly on feed pages, treat a timeout as loaded enough
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(30000),
	}); err != nil {
		log.Printf("    ⚠️ Results kept streaming, extracting what rendered: %v", err)
	}
	s.pace.Pause(browser.Settle)

	if err := browser.MouseJiggle(s.page, s.pace); err != nil {
		log.Printf("    ⚠️ Mouse movement failed: %v", err)
	}

	//scroll to pull more posts into the DOM
	if err := browser.IncrementalScroll(s.page, scrollSteps, s.pace); err != nil {
		return nil, s.fail("search_scroll", fmt.Errorf("scrolling results failed: %w", err))
	}
	s.pace.Pause(browser.Settle)

	candidates, err := s.extractPosts()
	if err != nil {
		return nil, s.fail("search_extract", err)
	}

	s.state = Extracted
	log.Printf("✅ Extracted %d posts using query variation #%d", len(candidates), query.Index+1)
	return candidates, nil
}

// extractPosts walks the rendered post containers and assembles candidates.
// A bad card never aborts the pass and in-run duplicates are dropped by URL.
func (s *Session) extractPosts() ([]scraper.Candidate, error) {
	cards, err := s.page.Locator(postContainers).All()
	if err != nil {
		return nil, fmt.Errorf("locating post containers: %w", err)
	}
	log.Printf("  📄 Found %d potential posts.", len(cards))

	seenURLs := mapset.NewSet[string]()
	var candidates []scraper.Candidate

	for i, card := range cards {
		if len(candidates) >= maxPosts {
			break
		}

		candidate := extractCard(card, i)
		if !candidate.Eligible() {
			continue
		}
		//Add returns false when the URL was already collected this run
		if !seenURLs.Add(candidate.URL) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// extractCard reads one post container. Every field goes through its locator
// chain independently, so a miss on one leaves the others intact.
func extractCard(card playwright.Locator, index int) scraper.Candidate {
	body, err := card.InnerText()
	if err != nil {
		body = ""
	}

	identifier, _ := card.GetAttribute("data-id")
	if identifier == "" {
		identifier = fmt.Sprintf("post_%d", index)
	}

	return scraper.Candidate{
		Identifier: identifier,
		Title:      firstText(card, titleLocators),
		Author:     firstText(card, authorLocators),
		Location:   firstText(card, locationLocators),
		PostedText: firstText(card, timestampLocators),
		Body:       scraper.TruncateBody(strings.TrimSpace(body)),
		URL:        postURL(card),
		Source:     "LinkedIn",
	}
}

// firstText tries each locator in order and returns the first non-empty
// trimmed text. Misses are expected, the caller keeps the empty string.
func firstText(card playwright.Locator, locators []string) string {
	for _, sel := range locators {
		el := card.Locator(sel).First()
		count, err := el.Count()
		if err != nil || count == 0 {
			continue
		}
		text, err := el.InnerText()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// postURL resolves the card's detail link through the link locator chain.
func postURL(card playwright.Locator) string {
	for _, sel := range linkLocators {
		el := card.Locator(sel).First()
		count, err := el.Count()
		if err != nil || count == 0 {
			continue
		}
		href, err := el.GetAttribute("href")
		if err != nil || href == "" {
			continue
		}
		return canonicalURL(href)
	}
	return ""
}

// canonicalURL makes relative hrefs absolute and strips the query string.
// Tracking params make the same post look like different URLs, which would
// wreck dedup downstream.
func canonicalURL(href string) string {
	full := href
	if !strings.HasPrefix(href, "http") {
		full = "https://www.linkedin.com" + href
	}
	return strings.Split(full, "?")[0]
}

// buildSearchURL expands a query variant into the content search URL with
// the job-seeker NOT clause appended.
func buildSearchURL(query search.Variant) string {
	return fmt.Sprintf(searchURLFormat, url.QueryEscape(query.Text+notClause))
}

// restoredSession loads the feed and checks for the signed-in nav bar.
// Cookie state is installed on the browser context before the session
// starts, so an intact session never sees the login form.
func (s *Session) restoredSession() bool {
	if _, err := s.page.Goto(feedURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return false
	}
	s.pace.Pause(browser.Navigate)

	if _, err := s.page.WaitForSelector("#global-nav", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		log.Println("🍪 No restored session, falling back to credential login.")
		return false
	}
	log.Println("✅ Session restored from cookies.")
	return true
}

// fail moves the machine to its terminal state and grabs page evidence
// while it still shows the problem.
func (s *Session) fail(name string, err error) error {
	s.state = Failed
	if s.debug != nil && s.page != nil {
		s.debug.Capture(s.page, "linkedin_"+name, err.Error())
	}
	return err
}

// isAuthSurface reports whether a URL still belongs to the login flow.
func isAuthSurface(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	path := strings.ToLower(u.Path)
	return strings.Contains(path, "/login") ||
		strings.Contains(path, "/uas/") ||
		strings.Contains(path, "/authwall")
}

// isChallengeSurface reports whether a URL is a verification checkpoint.
func isChallengeSurface(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	return strings.Contains(path, "/checkpoint") ||
		strings.Contains(path, "/challenge") ||
		strings.Contains(path, "/captcha")
}
