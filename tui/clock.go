package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FlashbackSRS/flipdeck/transition"
)

// TimerMsg is delivered when a Clock timer falls due.
type TimerMsg struct {
	ID int
}

// Clock implements transition.Clock on top of the Bubble Tea event loop.
// Timers are scheduled as tea.Tick commands, and their callbacks run inside
// Update, on the program goroutine.
type Clock struct {
	seq    int
	timers map[int]*timer
	queued []*timer
}

var _ transition.Clock = &Clock{}

type timer struct {
	id    int
	d     time.Duration
	f     func()
	clock *Clock
}

// NewClock returns a new Clock.
func NewClock() *Clock {
	return &Clock{timers: make(map[int]*timer)}
}

// AfterFunc schedules f. The timer starts when the command returned by Cmds
// is run.
func (c *Clock) AfterFunc(d time.Duration, f func()) transition.Timer {
	c.seq++
	t := &timer{id: c.seq, d: d, f: f, clock: c}
	c.timers[t.id] = t
	c.queued = append(c.queued, t)
	return t
}

func (t *timer) Stop() bool {
	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}
	delete(t.clock.timers, t.id)
	return true
}

// Cmds returns a tick command for each timer scheduled since the last call.
func (c *Clock) Cmds() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.queued))
	for _, t := range c.queued {
		if _, ok := c.timers[t.id]; !ok {
			continue
		}
		id := t.id
		cmds = append(cmds, tea.Tick(t.d, func(time.Time) tea.Msg {
			return TimerMsg{ID: id}
		}))
	}
	c.queued = c.queued[:0]
	return cmds
}

// Fire runs the callback of timer id, unless it was stopped or already ran.
func (c *Clock) Fire(id int) {
	t, ok := c.timers[id]
	if !ok {
		return
	}
	delete(c.timers, id)
	t.f()
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (c *Clock) Pending() int {
	return len(c.timers)
}
