// Package cardview tracks which face of the displayed card is showing, and
// whether its explanation is offered or expanded.
package cardview

import "github.com/FlashbackSRS/flipdeck/deck"

// Visibility is what the presentation surface should show.
type Visibility struct {
	// Flipped is true when the answer face is showing.
	Flipped bool
	// Explainable is true when the explanation toggle is offered.
	Explainable bool
	// Expanded is true when the explanation text is showing.
	Expanded bool
}

// State is the view state of one displayed card. A new State is created for
// every card attached, which resets everything to the question face.
type State struct {
	explanation deck.Explanation
	flipped     bool
	expanded    bool
}

// New returns the initial view state for card.
func New(card deck.Card) *State {
	return &State{explanation: card.Explain()}
}

// Explanation returns the card's display-ready explanation.
func (s *State) Explanation() deck.Explanation {
	return s.explanation
}

// Visibility returns the current visibility.
func (s *State) Visibility() Visibility {
	explainable := s.flipped && s.explanation.Kind != deck.ExplanationNone
	return Visibility{
		Flipped:     s.flipped,
		Explainable: explainable,
		Expanded:    explainable && s.expanded,
	}
}

// Flip turns the card over. The explanation always starts collapsed.
func (s *State) Flip() Visibility {
	s.flipped = !s.flipped
	s.expanded = false
	return s.Visibility()
}

// ToggleExplanation expands or collapses the explanation text. ok is false,
// and nothing changes, when no explanation is offered.
func (s *State) ToggleExplanation() (v Visibility, ok bool) {
	if !s.Visibility().Explainable {
		return s.Visibility(), false
	}
	s.expanded = !s.expanded
	return s.Visibility(), true
}
