package tui

import (
	"sort"
	"time"

	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/transition"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

// DefaultWidth is the viewport width, in columns, until the terminal reports
// its size.
const DefaultWidth = 80

type card struct {
	id      transition.CardID
	content deck.Card
	offset  transition.Offset
	flipped bool
	// seq orders cards; the newest is drawn on top.
	seq int
}

type animation struct {
	from, to   transition.Offset
	start      time.Time
	duration   time.Duration
	easing     transition.Easing
	onComplete func()
}

// Surface is a transition.Surface for a character grid. Offsets are measured
// in columns. Animations advance when Step is called.
type Surface struct {
	width int
	now   func() time.Time
	seq   int
	cards map[transition.CardID]*card
	anims map[transition.CardID]*animation

	explanation *deck.Explanation
	expanded    bool
}

var _ transition.Surface = &Surface{}
var _ viewer.Flipper = &Surface{}
var _ viewer.ExplanationExpander = &Surface{}

// NewSurface returns a Surface reading the time from now.
func NewSurface(now func() time.Time) *Surface {
	if now == nil {
		now = time.Now
	}
	return &Surface{
		width: DefaultWidth,
		now:   now,
		cards: make(map[transition.CardID]*card),
		anims: make(map[transition.CardID]*animation),
	}
}

// SetWidth sets the viewport width in columns.
func (s *Surface) SetWidth(w int) {
	if w > 0 {
		s.width = w
	}
}

// Width returns the viewport width in columns.
func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) ViewportWidth() float64 {
	return float64(s.width)
}

func (s *Surface) RenderCard(id transition.CardID, content deck.Card) {
	s.seq++
	s.cards[id] = &card{id: id, content: content, seq: s.seq}
}

func (s *Surface) SetPosition(id transition.CardID, o transition.Offset) {
	c, ok := s.cards[id]
	if !ok {
		return
	}
	delete(s.anims, id)
	c.offset = o
}

func (s *Surface) AnimateTo(id transition.CardID, o transition.Offset, d time.Duration, e transition.Easing, onComplete func()) {
	c, ok := s.cards[id]
	if !ok {
		return
	}
	s.anims[id] = &animation{
		from:       c.offset,
		to:         o,
		start:      s.now(),
		duration:   d,
		easing:     e,
		onComplete: onComplete,
	}
}

func (s *Surface) Remove(id transition.CardID) {
	delete(s.cards, id)
	delete(s.anims, id)
}

func (s *Surface) ShowExplanation(ex deck.Explanation) {
	s.explanation = &ex
	s.expanded = false
}

func (s *Surface) HideExplanation() {
	s.explanation = nil
	s.expanded = false
}

func (s *Surface) SetFlipped(id transition.CardID, flipped bool) {
	if c, ok := s.cards[id]; ok {
		c.flipped = flipped
	}
}

func (s *Surface) SetExplanationExpanded(expanded bool) {
	s.expanded = expanded
}

// Animating returns true while any animation is running.
func (s *Surface) Animating() bool {
	return len(s.anims) > 0
}

// Step moves animations to their positions at now. Animations that have run
// their course are completed, in the order they were started.
func (s *Surface) Step(now time.Time) {
	var finished []*animation
	for id, a := range s.anims {
		c := s.cards[id]
		t := 1.0
		if a.duration > 0 {
			t = float64(now.Sub(a.start)) / float64(a.duration)
		}
		if t >= 1 {
			c.offset = a.to
			delete(s.anims, id)
			finished = append(finished, a)
			continue
		}
		p := a.easing.At(t)
		c.offset = transition.Offset{
			X:        a.from.X + (a.to.X-a.from.X)*p,
			Rotation: a.from.Rotation + (a.to.Rotation-a.from.Rotation)*p,
		}
	}
	sort.Slice(finished, func(i, j int) bool { return finished[i].start.Before(finished[j].start) })
	for _, a := range finished {
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}

// stack returns the attached cards, bottom first.
func (s *Surface) stack() []*card {
	cards := make([]*card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].seq < cards[j].seq })
	return cards
}
