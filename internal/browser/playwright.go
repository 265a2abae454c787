package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Launch profile for the search session: automation fingerprints off,
// images off for speed, a pinned desktop identity.
var (
	launchArgs = []string{
		"--no-sandbox",
		"--disable-blink-features=AutomationControlled",
		"--disable-extensions",
		"--disable-plugins",
		"--disable-images",
	}
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Manager owns the playwright runtime and one Chromium instance for the
// lifetime of a run.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager(headless bool) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}

	return &Manager{pw: pw, browser: browser}, nil
}

// NewContext opens a context with the pinned user agent and a desktop
// viewport, installing any exported cookies before first navigation.
func (m *Manager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport:  &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := ctx.AddCookies(cookies); err != nil {
			ctx.Close()
			return nil, fmt.Errorf("could not install cookies: %w", err)
		}
	}

	return ctx, nil
}

func (m *Manager) Close() error {
	var firstErr error
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			firstErr = err
		}
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
