// Package mock provides a recording Surface and a manual Clock for tests.
package mock

import (
	"fmt"
	"sort"
	"time"

	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/transition"
)

// Animation is an AnimateTo call whose completion has not been signalled.
type Animation struct {
	ID         transition.CardID
	To         transition.Offset
	Duration   time.Duration
	Easing     transition.Easing
	OnComplete func()
}

// Surface records every call made to it.
type Surface struct {
	Width float64
	// AutoComplete signals completion from within AnimateTo.
	AutoComplete bool
	// Calls is the log of calls, in order.
	Calls []string
	// Attached maps each attached card to its current offset.
	Attached map[transition.CardID]transition.Offset
	// Content maps each attached card to the record it shows.
	Content map[transition.CardID]deck.Card
	// Pending holds uncompleted animations, oldest first.
	Pending []Animation
	// Explanation is the last explanation offered, or nil when hidden.
	Explanation *deck.Explanation
}

var _ transition.Surface = &Surface{}

// NewSurface returns a Surface with the given viewport width.
func NewSurface(width float64) *Surface {
	return &Surface{
		Width:    width,
		Attached: make(map[transition.CardID]transition.Offset),
		Content:  make(map[transition.CardID]deck.Card),
	}
}

func (s *Surface) record(format string, args ...interface{}) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

// ViewportWidth returns s.Width.
func (s *Surface) ViewportWidth() float64 {
	return s.Width
}

// RenderCard attaches a card at the resting position.
func (s *Surface) RenderCard(id transition.CardID, card deck.Card) {
	s.record("render %s %s", id, card.Question)
	s.Attached[id] = transition.Neutral
	s.Content[id] = card
}

// SetPosition moves an attached card.
func (s *Surface) SetPosition(id transition.CardID, o transition.Offset) {
	s.record("position %s %v", id, o.X)
	if _, ok := s.Attached[id]; !ok {
		panic("SetPosition on detached card " + string(id))
	}
	s.Attached[id] = o
}

// AnimateTo records the animation, and completes it immediately if
// AutoComplete is set.
func (s *Surface) AnimateTo(id transition.CardID, o transition.Offset, d time.Duration, e transition.Easing, onComplete func()) {
	s.record("animate %s %v %s", id, o.X, d)
	if _, ok := s.Attached[id]; !ok {
		panic("AnimateTo on detached card " + string(id))
	}
	s.Attached[id] = o
	if onComplete == nil {
		return
	}
	if s.AutoComplete {
		onComplete()
		return
	}
	s.Pending = append(s.Pending, Animation{ID: id, To: o, Duration: d, Easing: e, OnComplete: onComplete})
}

// Remove detaches a card.
func (s *Surface) Remove(id transition.CardID) {
	s.record("remove %s", id)
	if _, ok := s.Attached[id]; !ok {
		panic("Remove of detached card " + string(id))
	}
	delete(s.Attached, id)
	delete(s.Content, id)
}

// ShowExplanation records the explanation.
func (s *Surface) ShowExplanation(ex deck.Explanation) {
	s.record("explain %s", ex.Kind)
	s.Explanation = &ex
}

// HideExplanation clears the explanation.
func (s *Surface) HideExplanation() {
	s.record("hide explanation")
	s.Explanation = nil
}

// CompleteNext signals completion of the oldest pending animation. It
// returns false if none is pending.
func (s *Surface) CompleteNext() bool {
	if len(s.Pending) == 0 {
		return false
	}
	a := s.Pending[0]
	s.Pending = s.Pending[1:]
	a.OnComplete()
	return true
}

// CompleteAll signals completion of pending animations until none remain,
// including animations started by completion handlers.
func (s *Surface) CompleteAll() {
	for s.CompleteNext() {
	}
}

// Drop discards pending animations without signalling them.
func (s *Surface) Drop() {
	s.Pending = nil
}

// AttachedIDs returns the attached card IDs, sorted.
func (s *Surface) AttachedIDs() []transition.CardID {
	ids := make([]transition.CardID, 0, len(s.Attached))
	for id := range s.Attached {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Reset clears the call log.
func (s *Surface) Reset() {
	s.Calls = nil
}

type timer struct {
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Clock is a manually advanced Clock.
type Clock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

var _ transition.Clock = &Clock{}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *Clock) AfterFunc(d time.Duration, f func()) transition.Timer {
	c.seq++
	t := &timer{at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d, running due callbacks in time order.
// Callbacks scheduled by callbacks run too, if they fall due within d.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.next(end)
		if t == nil {
			break
		}
		c.now = t.at
		t.done = true
		t.f()
	}
	c.now = end
}

func (c *Clock) next(end time.Duration) *timer {
	var best *timer
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.done {
			continue
		}
		live = append(live, t)
		if t.at > end {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	c.timers = live
	return best
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}
