// Package selector picks the next card to show when advancing.
package selector

import (
	"math/rand"
	"time"
)

// Selector picks uniformly random indices in [0, size).
type Selector struct {
	size int
	rnd  *rand.Rand
}

// New returns a Selector for a deck of the given size, seeded from the clock.
func New(size int) *Selector {
	return NewWithSource(size, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Selector drawing from src.
func NewWithSource(size int, src rand.Source) *Selector {
	return &Selector{
		size: size,
		rnd:  rand.New(src),
	}
}

// Size returns the deck size the selector draws from.
func (s *Selector) Size() int {
	return s.size
}

// Select returns a random index other than excluding. With a single card
// there is nothing to exclude and 0 is returned. For an empty deck it
// returns -1; callers must not select from an empty deck.
//
// This is rejection sampling: it is not time-bounded, but for a deck of n
// cards the expected number of draws is n/(n-1).
func (s *Selector) Select(excluding int) int {
	switch s.size {
	case 0:
		return -1
	case 1:
		return 0
	}
	for {
		if next := s.rnd.Intn(s.size); next != excluding {
			return next
		}
	}
}
