// Package gesture interprets a single pointer drag on a card.
//
// A State lives from pointer-down until release or cancel. It never touches
// the display; the caller applies the Feedback it returns and acts on the
// final Outcome.
package gesture

import "math"

const (
	// DefaultSlop is the displacement a pointer must exceed before the
	// interaction counts as a drag rather than a tap.
	DefaultSlop = 6.0
	// DefaultRatio is the fraction of the viewport width a drag must cover
	// to commit.
	DefaultRatio = 0.07
	// DefaultMaxThreshold caps the commit distance on wide viewports.
	DefaultMaxThreshold = 60.0
	// MaxRotation is the greatest tilt, in degrees, applied while dragging.
	MaxRotation = 12.0
	// rotationDivisor converts displacement into degrees of tilt.
	rotationDivisor = 15.0
)

// Outcome is the decision made when an interaction ends.
type Outcome int

// Outcomes
const (
	Reset Outcome = iota
	Advance
	GoBack
)

func (o Outcome) String() string {
	switch o {
	case Reset:
		return "Reset"
	case Advance:
		return "Advance"
	case GoBack:
		return "GoBack"
	}
	return "Unknown"
}

// Config holds the tracker's tunables.
type Config struct {
	Slop         float64
	Ratio        float64
	MaxThreshold float64
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		Slop:         DefaultSlop,
		Ratio:        DefaultRatio,
		MaxThreshold: DefaultMaxThreshold,
	}
}

// Threshold returns the commit distance for a viewport of the given width.
// An unknown (non-positive) width yields the cap.
func (c Config) Threshold(viewportWidth float64) float64 {
	if viewportWidth <= 0 {
		return c.MaxThreshold
	}
	return math.Min(viewportWidth*c.Ratio, c.MaxThreshold)
}

// Rotation returns the tilt for a horizontal displacement dx.
func Rotation(dx float64) float64 {
	if dx == 0 {
		return 0
	}
	return math.Copysign(math.Min(MaxRotation, math.Abs(dx)/rotationDivisor), dx)
}

// Feedback is the visual state to apply to a card being dragged.
type Feedback struct {
	DX       float64
	Rotation float64
}

// State is the state of one pointer interaction.
type State struct {
	PointerID int
	StartX    float64
	LastX     float64
	Dragging  bool
	config    Config
}

// Begin starts tracking the pointer identified by pointerID at position x.
func Begin(conf Config, pointerID int, x float64) *State {
	return &State{
		PointerID: pointerID,
		StartX:    x,
		LastX:     x,
		config:    conf,
	}
}

// Move records a sample. busy is true while a card transition is running,
// in which case the sample is ignored entirely. ok is true when fb should be
// applied to the card.
func (s *State) Move(pointerID int, x float64, busy bool) (fb Feedback, ok bool) {
	if busy || pointerID != s.PointerID {
		return Feedback{}, false
	}
	dx := x - s.StartX
	if math.Abs(dx) > s.config.Slop {
		s.Dragging = true
	}
	s.LastX = x
	if !s.Dragging {
		return Feedback{}, false
	}
	return Feedback{DX: dx, Rotation: Rotation(dx)}, true
}

// Displacement returns the net horizontal movement so far.
func (s *State) Displacement() float64 {
	return s.LastX - s.StartX
}

// Release ends the interaction and returns its outcome. A tap never commits,
// even when the threshold is below the slop, and a commit made while busy is
// demoted to Reset.
func (s *State) Release(viewportWidth float64, busy bool) Outcome {
	if !s.Dragging {
		return Reset
	}
	threshold := s.config.Threshold(viewportWidth)
	dx := s.Displacement()
	var outcome Outcome
	switch {
	case dx <= -threshold:
		outcome = Advance
	case dx >= threshold:
		outcome = GoBack
	}
	if busy {
		return Reset
	}
	return outcome
}

// Cancel ends the interaction without committing.
func (s *State) Cancel() Outcome {
	return Reset
}

// IsTap reports whether the interaction never became a drag.
func (s *State) IsTap() bool {
	return !s.Dragging
}
