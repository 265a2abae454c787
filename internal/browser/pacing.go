package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ActionClass buckets page interactions by how long a person would dwell
// after them.
type ActionClass int

const (
	Navigate ActionClass = iota //full page loads
	Input                       //typing into a field
	Scroll                      //one scroll step
	Settle                      //waiting for results to arrive
	Micro                       //fine motor movement between actions
)

// PacingPolicy decides how long to pause after each class of action.
type PacingPolicy interface {
	Pause(class ActionClass)
}

// Bounds is a half-open pause interval [Min, Max).
type Bounds struct {
	Min, Max time.Duration
}

// HumanPacing draws every pause uniformly from a per-class interval, so no
// two runs produce the same timing trace.
type HumanPacing struct {
	bounds map[ActionClass]Bounds
}

// NewHumanPacing returns the default profile: several seconds of dwell
// after navigation, around a second for keystrokes and scroll steps.
func NewHumanPacing() *HumanPacing {
	return &HumanPacing{
		bounds: map[ActionClass]Bounds{
			Navigate: {3 * time.Second, 5 * time.Second},
			Input:    {1 * time.Second, 2 * time.Second},
			Scroll:   {1 * time.Second, 3 * time.Second},
			Settle:   {2 * time.Second, 5 * time.Second},
			Micro:    {100 * time.Millisecond, 300 * time.Millisecond},
		},
	}
}

func (p *HumanPacing) Pause(class ActionClass) {
	time.Sleep(p.draw(class))
}

func (p *HumanPacing) draw(class ActionClass) time.Duration {
	b, ok := p.bounds[class]
	if !ok {
		return 0
	}
	if b.Max <= b.Min {
		return b.Min
	}
	return b.Min + time.Duration(rand.Int63n(int64(b.Max-b.Min)))
}

// ZeroPacing skips every pause. Tests use it.
type ZeroPacing struct{}

func (ZeroPacing) Pause(ActionClass) {}

// IncrementalScroll advances the page the way a reader would: partial
// viewport steps with a pause after each one. Content further down stays
// unloaded on purpose.
func IncrementalScroll(page playwright.Page, steps int, pace PacingPolicy) error {
	for i := 0; i < steps; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight * 0.7)"); err != nil {
			return err
		}
		pace.Pause(Scroll)
	}
	return nil
}
