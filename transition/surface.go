package transition

import (
	"math"
	"time"

	"github.com/FlashbackSRS/flipdeck/deck"
)

// CardID identifies one rendered card. A new ID is issued every time a card
// is attached, even when the same deck entry is shown again.
type CardID string

// Offset is a card's displacement from its resting position: a horizontal
// translation in the surface's length units, and a tilt in degrees.
type Offset struct {
	X        float64
	Rotation float64
}

// Neutral is the resting position.
var Neutral = Offset{}

// Easing is an animation timing curve.
type Easing int

// Easing curves
const (
	Linear Easing = iota
	// EaseIn accelerates; used for cards leaving.
	EaseIn
	// EaseOut decelerates sharply; used for cards arriving and snapping back.
	EaseOut
)

// CSS returns the CSS transition-timing-function for e.
func (e Easing) CSS() string {
	switch e {
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "cubic-bezier(.2,.9,.2,1)"
	}
	return "linear"
}

// At maps linear progress t in [0,1] to eased progress. Surfaces without
// native animation support step frames with this.
func (e Easing) At(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - math.Pow(1-t, 3)
	}
	return t
}

// Surface displays cards. The controller calls it; it never calls back
// except through the onComplete callback passed to AnimateTo, which it must
// invoke on the controller's goroutine. A surface may drop an onComplete
// signal; the controller's fallback timers cover for it.
type Surface interface {
	// ViewportWidth returns the width of the visible area. Cards move by this
	// much to leave or enter the screen.
	ViewportWidth() float64
	// RenderCard creates and attaches a card.
	RenderCard(id CardID, card deck.Card)
	// SetPosition moves a card immediately, without animation.
	SetPosition(id CardID, o Offset)
	// AnimateTo moves a card over d. onComplete may be nil.
	AnimateTo(id CardID, o Offset, d time.Duration, e Easing, onComplete func())
	// Remove detaches a card.
	Remove(id CardID)
	// ShowExplanation offers the explanation. Its text starts collapsed.
	ShowExplanation(ex deck.Explanation)
	// HideExplanation removes the explanation and its toggle.
	HideExplanation()
}

// Timer is a pending Clock callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was stopped.
	Stop() bool
}

// Clock schedules callbacks. Callbacks must run on the controller's
// goroutine.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}
