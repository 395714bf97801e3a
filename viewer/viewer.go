// Package viewer connects user input to the transition controller and the
// per-card view state. Both clients drive a Viewer; they differ only in the
// Surface and Clock they provide.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/flimzy/log"

	"github.com/FlashbackSRS/flipdeck/cardview"
	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/gesture"
	"github.com/FlashbackSRS/flipdeck/transition"
)

// clickGrace is how long after a drag is released clicks are still ignored.
const clickGrace = 20 * time.Millisecond

// Flipper is implemented by surfaces that render the answer face.
type Flipper interface {
	SetFlipped(id transition.CardID, flipped bool)
}

// ExplanationExpander is implemented by surfaces that can expand and
// collapse the explanation text independently of its toggle.
type ExplanationExpander interface {
	SetExplanationExpanded(expanded bool)
}

// Options configure a Viewer.
type Options struct {
	transition.Options
	// Gesture defaults to gesture.DefaultConfig() when zero.
	Gesture gesture.Config
	// CardLabel names a card without a question in the list, n counting
	// from 1. Defaults to "Card n".
	CardLabel func(n int) string
}

// Entry is one line of the card list.
type Entry struct {
	Index int
	Label string
	// Current is true for the card on screen.
	Current bool
}

// Viewer is the interactive card viewer. Like the Controller it wraps, it is
// not safe for concurrent use.
type Viewer struct {
	ctl       *transition.Controller
	surface   transition.Surface
	clock     transition.Clock
	conf      gesture.Config
	cardLabel func(int) string

	view   *cardview.State
	viewID transition.CardID
	drag   *gesture.State

	// moved suppresses the click that follows a drag.
	moved      bool
	movedTimer transition.Timer
}

// New returns a Viewer for d. Call Start to show the first card.
func New(d *deck.Deck, s transition.Surface, c transition.Clock, opts Options) *Viewer {
	v := &Viewer{
		surface:   s,
		clock:     c,
		conf:      opts.Gesture,
		cardLabel: opts.CardLabel,
	}
	if v.conf == (gesture.Config{}) {
		v.conf = gesture.DefaultConfig()
	}
	if v.cardLabel == nil {
		v.cardLabel = func(n int) string { return fmt.Sprintf("Card %d", n) }
	}
	onCard := opts.OnCard
	opts.OnCard = func(id transition.CardID, index int) {
		card, _ := d.Card(index)
		v.view = cardview.New(card)
		v.viewID = id
		v.drag = nil
		if onCard != nil {
			onCard(id, index)
		}
	}
	v.ctl = transition.New(d, s, c, opts.Options)
	return v
}

// Controller returns the underlying transition controller.
func (v *Viewer) Controller() *transition.Controller {
	return v.ctl
}

// Start shows the first card.
func (v *Viewer) Start() {
	v.ctl.Start()
}

// Visibility returns the view state of the card on screen.
func (v *Viewer) Visibility() cardview.Visibility {
	if v.view == nil || v.ctl.ActiveCard() == "" {
		return cardview.Visibility{}
	}
	return v.view.Visibility()
}

// Dragging returns true while a drag gesture is in progress.
func (v *Viewer) Dragging() bool {
	return v.drag != nil && v.drag.Dragging
}

// PointerDown begins a gesture on the card on screen.
func (v *Viewer) PointerDown(pointerID int, x float64) {
	if v.drag != nil || v.ctl.ActiveCard() == "" {
		return
	}
	v.drag = gesture.Begin(v.conf, pointerID, x)
}

// PointerMove reports pointer motion. While dragging, the card follows the
// pointer.
func (v *Viewer) PointerMove(pointerID int, x float64) {
	if v.drag == nil {
		return
	}
	fb, ok := v.drag.Move(pointerID, x, v.ctl.Busy())
	if !ok {
		return
	}
	v.setMoved()
	if id := v.ctl.ActiveCard(); id != "" {
		v.surface.SetPosition(id, transition.Offset{X: fb.DX, Rotation: fb.Rotation})
	}
}

// PointerUp ends the gesture, committing a swipe if it travelled far enough.
func (v *Viewer) PointerUp(pointerID int) {
	if v.drag == nil || v.drag.PointerID != pointerID {
		return
	}
	drag := v.drag
	v.drag = nil
	outcome := drag.Release(v.surface.ViewportWidth(), v.ctl.Busy())
	log.Debugf("gesture released: %s (dx=%v)\n", outcome, drag.Displacement())
	v.resolve(drag, outcome)
}

// PointerCancel abandons the gesture and returns the card to rest.
func (v *Viewer) PointerCancel(pointerID int) {
	if v.drag == nil || v.drag.PointerID != pointerID {
		return
	}
	drag := v.drag
	v.drag = nil
	v.resolve(drag, drag.Cancel())
}

func (v *Viewer) resolve(drag *gesture.State, outcome gesture.Outcome) {
	if drag.Dragging {
		v.releaseMoved()
	}
	switch outcome {
	case gesture.Advance:
		v.ctl.RequestAdvance()
	case gesture.GoBack:
		v.ctl.RequestGoBack()
	default:
		// A drag released while a transition runs leaves the card where the
		// transition put it.
		if drag.Dragging && !v.ctl.Busy() {
			v.ctl.Bounce()
		}
	}
}

func (v *Viewer) setMoved() {
	v.moved = true
	if v.movedTimer != nil {
		v.movedTimer.Stop()
		v.movedTimer = nil
	}
}

func (v *Viewer) releaseMoved() {
	if v.movedTimer != nil {
		v.movedTimer.Stop()
	}
	v.movedTimer = v.clock.AfterFunc(clickGrace, func() {
		v.moved = false
		v.movedTimer = nil
	})
}

// Click flips the card on screen, unless the click ends a drag.
func (v *Viewer) Click() {
	if v.moved || v.view == nil || v.ctl.ActiveCard() == "" {
		return
	}
	vis := v.view.Flip()
	if f, ok := v.surface.(Flipper); ok {
		f.SetFlipped(v.viewID, vis.Flipped)
	}
	if vis.Explainable {
		v.surface.ShowExplanation(v.view.Explanation())
	} else {
		v.surface.HideExplanation()
	}
	v.expand(vis.Expanded)
}

// ToggleExplanation expands or collapses the explanation text. It does
// nothing unless the card on screen offers an explanation.
func (v *Viewer) ToggleExplanation() {
	if v.view == nil || v.ctl.ActiveCard() == "" {
		return
	}
	vis, ok := v.view.ToggleExplanation()
	if !ok {
		return
	}
	v.expand(vis.Expanded)
}

func (v *Viewer) expand(expanded bool) {
	if e, ok := v.surface.(ExplanationExpander); ok {
		e.SetExplanationExpanded(expanded)
	}
}

// Advance shows a random other card, as a swipe to the left does.
func (v *Viewer) Advance() bool {
	return v.ctl.RequestAdvance()
}

// GoBack shows the previously shown card, as a swipe to the right does.
func (v *Viewer) GoBack() bool {
	return v.ctl.RequestGoBack()
}

// JumpTo shows card i immediately and clears the history.
func (v *Viewer) JumpTo(i int) error {
	v.drag = nil
	return v.ctl.JumpTo(i)
}

// Entries returns the card list. Cards without a question are labelled with
// their position.
func (v *Viewer) Entries() []Entry {
	d := v.ctl.Deck()
	current, _, ok := v.ctl.Current()
	entries := make([]Entry, 0, d.Len())
	for i, card := range d.Cards() {
		label := strings.TrimSpace(card.Question)
		if label == "" {
			label = v.cardLabel(i + 1)
		}
		entries = append(entries, Entry{
			Index:   i,
			Label:   label,
			Current: ok && i == current,
		})
	}
	return entries
}
