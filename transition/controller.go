// Package transition sequences the cards shown by the viewer: the exit of the
// outgoing card, the entry of the incoming one, and the history used to go
// back. At most one transition runs at a time.
//
// A Controller is not safe for concurrent use. All of its methods, and all
// Surface and Clock callbacks, must run on one goroutine.
package transition

import (
	"time"

	"github.com/flimzy/log"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"

	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/history"
	"github.com/FlashbackSRS/flipdeck/selector"
)

// Phase is the controller's transition state.
type Phase int

// Phases
const (
	Idle Phase = iota
	Entering
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Entering:
		return "Entering"
	case Exiting:
		return "Exiting"
	}
	return "Unknown"
}

// Direction is the side a card enters from.
type Direction int

// Entry directions
const (
	// Snap places the card without an entry animation.
	Snap Direction = iota
	FromLeft
	FromRight
)

// exitTilt is the rotation, in degrees, of a card leaving the screen.
const exitTilt = 10

// Timings are the animation durations and their fallbacks. A fallback fires
// the completion handler if the surface never reports the animation done.
type Timings struct {
	AdvanceExit     time.Duration
	AdvanceFallback time.Duration
	GoBackExit      time.Duration
	GoBackFallback  time.Duration
	Enter           time.Duration
	EnterFallback   time.Duration
	Bounce          time.Duration
}

// DefaultTimings returns the standard timings.
func DefaultTimings() Timings {
	return Timings{
		AdvanceExit:     280 * time.Millisecond,
		AdvanceFallback: 300 * time.Millisecond,
		GoBackExit:      260 * time.Millisecond,
		GoBackFallback:  280 * time.Millisecond,
		Enter:           360 * time.Millisecond,
		EnterFallback:   520 * time.Millisecond,
		Bounce:          220 * time.Millisecond,
	}
}

// Selector picks the card to show after excluding. selector.Selector
// satisfies it.
type Selector interface {
	Select(excluding int) int
}

var _ Selector = &selector.Selector{}

// Options configure a Controller. The zero value is usable.
type Options struct {
	// Timings default to DefaultTimings() when zero.
	Timings Timings
	// Selector defaults to a clock-seeded selector.New.
	Selector Selector
	// NewID defaults to random UUIDs.
	NewID func() CardID
	// OnCard, if set, is called each time a card is attached.
	OnCard func(id CardID, index int)
}

// Controller owns the deck state and the transition state.
type Controller struct {
	deck    *deck.Deck
	surface Surface
	clock   Clock
	sel     Selector
	timings Timings
	newID   func() CardID
	onCard  func(CardID, int)

	history history.Stack
	current int
	phase   Phase
	active  CardID

	// pending is the single outstanding fallback timer.
	pending Timer
	// gen invalidates completion handlers of finished or aborted
	// transitions.
	gen uint64
}

// New returns a Controller for d, displayed on s. Nothing is rendered until
// Start is called.
func New(d *deck.Deck, s Surface, c Clock, opts Options) *Controller {
	ctl := &Controller{
		deck:    d,
		surface: s,
		clock:   c,
		sel:     opts.Selector,
		timings: opts.Timings,
		newID:   opts.NewID,
		onCard:  opts.OnCard,
	}
	if ctl.sel == nil {
		ctl.sel = selector.New(d.Len())
	}
	if ctl.timings == (Timings{}) {
		ctl.timings = DefaultTimings()
	}
	if ctl.newID == nil {
		ctl.newID = func() CardID { return CardID(uuid.New()) }
	}
	return ctl
}

// Phase returns the current transition phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Busy returns true while a transition is running.
func (c *Controller) Busy() bool {
	return c.phase != Idle
}

// ActiveCard returns the ID of the attached card, or "" if none is attached.
func (c *Controller) ActiveCard() CardID {
	return c.active
}

// Current returns the index and content of the current card. ok is false for
// an empty deck.
func (c *Controller) Current() (index int, card deck.Card, ok bool) {
	card, ok = c.deck.Card(c.current)
	return c.current, card, ok
}

// History returns the back-navigation history, oldest first.
func (c *Controller) History() []int {
	return c.history.Indices()
}

// Deck returns the deck being shown.
func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// Start shows the first card, entering from the right. On an empty deck it
// does nothing.
func (c *Controller) Start() {
	if c.deck.Len() == 0 {
		log.Debugf("empty deck, nothing to show\n")
		return
	}
	c.abort()
	c.detach()
	c.current = 0
	c.history.Clear()
	c.enter(FromRight)
}

// RequestAdvance retires the current card to the left and shows a random
// other card from the right. It returns false, doing nothing, unless the
// controller is idle with a card displayed.
func (c *Controller) RequestAdvance() bool {
	if c.phase != Idle || c.active == "" {
		return false
	}
	prev := c.current
	c.history.Push(prev)
	w := c.surface.ViewportWidth()
	c.exit(Offset{X: -w, Rotation: -exitTilt}, c.timings.AdvanceExit, c.timings.AdvanceFallback, func() int {
		return c.sel.Select(prev)
	}, FromRight)
	return true
}

// RequestGoBack retires the current card to the right and shows the
// previously shown card from the left. With no history, the card bounces
// back to its resting position and nothing else changes. It returns true only
// if a transition started. Nothing at all happens while a transition runs.
func (c *Controller) RequestGoBack() bool {
	if c.phase != Idle || c.active == "" {
		return false
	}
	prev, ok := c.history.Pop()
	if !ok {
		c.Bounce()
		return false
	}
	w := c.surface.ViewportWidth()
	c.exit(Offset{X: w, Rotation: exitTilt}, c.timings.GoBackExit, c.timings.GoBackFallback, func() int {
		return prev
	}, FromLeft)
	return true
}

// Bounce returns the current card to its resting position, as after an
// uncommitted drag. It has no effect on state.
func (c *Controller) Bounce() {
	if c.active == "" {
		return
	}
	c.surface.AnimateTo(c.active, Neutral, c.timings.Bounce, EaseOut, nil)
}

// JumpTo shows the card at index i immediately, without animation. Any
// running transition is abandoned and history is cleared.
func (c *Controller) JumpTo(i int) error {
	if i < 0 || i >= c.deck.Len() {
		return errors.Errorf("card %d out of range [0,%d)", i, c.deck.Len())
	}
	c.abort()
	c.detach()
	c.current = i
	c.history.Clear()
	c.surface.HideExplanation()
	c.enter(Snap)
	return nil
}

// abort cancels the pending timer and invalidates outstanding completion
// handlers.
func (c *Controller) abort() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
	c.phase = Idle
}

func (c *Controller) detach() {
	if c.active != "" {
		c.surface.Remove(c.active)
		c.active = ""
	}
}

// race arranges for done to run once, on whichever comes first: the
// surface's completion signal or the fallback timer. The returned function is
// the completion signal to pass to AnimateTo; extra calls are ignored.
func (c *Controller) race(fallback time.Duration, done func()) func() {
	c.abort()
	gen := c.gen
	complete := func() {
		if c.gen != gen {
			return
		}
		c.gen++
		if c.pending != nil {
			c.pending.Stop()
			c.pending = nil
		}
		done()
	}
	c.pending = c.clock.AfterFunc(fallback, complete)
	return complete
}

func (c *Controller) exit(to Offset, d, fallback time.Duration, next func() int, from Direction) {
	id := c.active
	complete := c.race(fallback, func() {
		c.surface.Remove(id)
		c.active = ""
		c.current = next()
		c.surface.HideExplanation()
		log.Debugf("%s left, showing card %d\n", id, c.current)
		c.enter(from)
	})
	c.phase = Exiting
	c.surface.AnimateTo(id, to, d, EaseIn, complete)
}

func (c *Controller) enter(from Direction) {
	card, _ := c.deck.Card(c.current)
	id := c.newID()
	c.surface.RenderCard(id, card)
	c.active = id
	if c.onCard != nil {
		c.onCard(id, c.current)
	}
	w := c.surface.ViewportWidth()
	switch from {
	case Snap:
		c.surface.SetPosition(id, Neutral)
		c.phase = Idle
		return
	case FromLeft:
		c.surface.SetPosition(id, Offset{X: -w})
	case FromRight:
		c.surface.SetPosition(id, Offset{X: w})
	}
	complete := c.race(c.timings.EnterFallback, func() {
		c.phase = Idle
		log.Debugf("%s settled\n", id)
	})
	c.phase = Entering
	c.surface.AnimateTo(id, Neutral, c.timings.Enter, EaseOut, complete)
}
