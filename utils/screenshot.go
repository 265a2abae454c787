package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// SnapshotDebugger persists what a page looked like when something went
// wrong: a full-page screenshot plus the rendered HTML next to it.
type SnapshotDebugger struct {
	outputDir string
}

func NewSnapshotDebugger(outputDir string) *SnapshotDebugger {
	os.MkdirAll(outputDir, 0755)
	return &SnapshotDebugger{
		outputDir: outputDir,
	}
}

// Capture is fire-and-forget: diagnostics must never fail the run they are
// diagnosing, so every problem here is logged and swallowed.
func (s *SnapshotDebugger) Capture(page playwright.Page, name, message string) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	base := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s", name, timestamp))
	log.Printf("📸 %s", message)

	//Take screenshot
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(base + ".png"),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
	} else {
		log.Printf("   Screenshot saved: %s.png", base)
	}

	//Rendered HTML tells the rest of the story
	html, err := page.Content()
	if err != nil {
		log.Printf("⚠️ Failed to read page content: %v", err)
		return
	}
	if err := os.WriteFile(base+".html", []byte(html), 0644); err != nil {
		log.Printf("⚠️ Failed to save page content: %v", err)
		return
	}
	log.Printf("   Page HTML saved: %s.html", base)
}
