package browser

import (
	"math/rand"

	"github.com/playwright-community/playwright-go"
)

// MouseJiggle makes a few random cursor moves to break up an otherwise
// perfectly linear automation trace.
func MouseJiggle(page playwright.Page, pace PacingPolicy) error {
	viewportSize := page.ViewportSize()
	if viewportSize == nil {
		return nil
	}

	for i := 0; i < 3; i++ {
		x := rand.Intn(viewportSize.Width)
		y := rand.Intn(viewportSize.Height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return err
		}
		pace.Pause(Micro)
	}
	return nil
}
