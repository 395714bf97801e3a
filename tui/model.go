// Package tui is the terminal front end: a Bubble Tea model driving a
// viewer.Viewer over a character-grid Surface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flimzy/log"
	"github.com/nicksnyder/go-i18n/i18n/bundle"

	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/l10n"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

// frameInterval is the animation frame period.
const frameInterval = time.Second / 30

// FrameMsg advances running animations.
type FrameMsg time.Time

// Model is the terminal viewer.
type Model struct {
	viewer  *viewer.Viewer
	surface *Surface
	clock   *Clock
	T       bundle.TranslateFunc
	now     func() time.Time
	cards   int

	// ticking is true while a FrameMsg is outstanding.
	ticking bool

	listOpen bool
	cursor   int

	// pointer is the mouse button held down, if any.
	pointer bool
}

var _ tea.Model = &Model{}

// Options configure a Model.
type Options struct {
	viewer.Options
	// T translates interface strings. Defaults to returning the message ID.
	T bundle.TranslateFunc
	// Now defaults to time.Now.
	Now func() time.Time
}

// New returns a Model showing d.
func New(d *deck.Deck, opts Options) *Model {
	m := &Model{
		T:     opts.T,
		now:   opts.Now,
		clock: NewClock(),
		cards: d.Len(),
	}
	if m.T == nil {
		m.T = func(id string, _ ...interface{}) string { return id }
	} else if opts.CardLabel == nil {
		opts.CardLabel = l10n.Labeller(m.T)
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.surface = NewSurface(m.now)
	m.viewer = viewer.New(d, m.surface, m.clock, opts.Options)
	return m
}

// Viewer returns the underlying viewer.
func (m *Model) Viewer() *viewer.Viewer {
	return m.viewer
}

// Surface returns the terminal surface.
func (m *Model) Surface() *Surface {
	return m.surface
}

// Clock returns the timer source.
func (m *Model) Clock() *Clock {
	return m.clock
}

// ListOpen returns true while the card list is shown.
func (m *Model) ListOpen() bool {
	return m.listOpen
}

// Init shows the first card.
func (m *Model) Init() tea.Cmd {
	m.viewer.Start()
	return m.flush()
}

// Update handles a message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.SetWidth(msg.Width)
	case TimerMsg:
		m.clock.Fire(msg.ID)
	case FrameMsg:
		m.ticking = false
		m.surface.Step(time.Time(msg))
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if quit := m.handleKey(msg); quit {
			return m, tea.Quit
		}
	}
	return m, m.flush()
}

// flush returns the commands needed for pending timers and animations.
func (m *Model) flush() tea.Cmd {
	cmds := m.clock.Cmds()
	if m.surface.Animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
			return FrameMsg(t)
		}))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (quit bool) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return true
	}
	if m.listOpen {
		m.handleListKey(key)
		return false
	}
	switch key {
	case "left", "h":
		m.viewer.Advance()
	case "right", "l":
		m.viewer.GoBack()
	case " ", "enter":
		m.viewer.Click()
	case "e":
		m.viewer.ToggleExplanation()
	case "tab":
		m.openList()
	}
	return false
}

func (m *Model) openList() {
	if m.cards == 0 {
		return
	}
	m.listOpen = true
	m.cursor = 0
	for _, e := range m.viewer.Entries() {
		if e.Current {
			m.cursor = e.Index
		}
	}
}

func (m *Model) handleListKey(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.cards-1 {
			m.cursor++
		}
	case "enter":
		if err := m.viewer.JumpTo(m.cursor); err != nil {
			log.Printf("Jump to card %d failed: %s\n", m.cursor, err)
		}
		m.listOpen = false
	case "esc", "tab":
		m.listOpen = false
	}
}

// handleMouse maps the left button to a pointer. A release that was not a
// drag is a click, as in a browser.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.listOpen {
		return
	}
	x := float64(msg.X)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointer = true
		m.viewer.PointerDown(0, x)
	case tea.MouseActionMotion:
		if m.pointer {
			m.viewer.PointerMove(0, x)
		}
	case tea.MouseActionRelease:
		if !m.pointer {
			return
		}
		m.pointer = false
		m.viewer.PointerMove(0, x)
		m.viewer.PointerUp(0)
		m.viewer.Click()
	}
}

// View renders the screen.
func (m *Model) View() string {
	var b strings.Builder
	if m.cards == 0 {
		b.WriteString(subtleStyle.Render(m.T(l10n.EmptyDeck)))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render(m.T(l10n.TerminalHelp)))
		b.WriteString("\n")
		return b.String()
	}
	if m.listOpen {
		return m.listView()
	}
	index, _, _ := m.viewer.Controller().Current()
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d/%d", index+1, m.cards)))
	b.WriteString("\n\n")
	b.WriteString(m.surface.renderCards())
	b.WriteString("\n\n")
	if ex := m.surface.explanation; ex != nil {
		b.WriteString(toggleStyle.Render("[e] " + m.T(l10n.ExplainToggle)))
		b.WriteString("\n")
		if m.surface.expanded {
			for _, line := range wrap(ex.Text, cardWidth(m.surface.width)) {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(subtleStyle.Render(m.T(l10n.TerminalHelp)))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.T(l10n.ListTitle)))
	b.WriteString("\n\n")
	for _, e := range m.viewer.Entries() {
		prefix := "  "
		label := e.Label
		if e.Current {
			label = currentStyle.Render(label)
		}
		if e.Index == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + label + "\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.T(l10n.TerminalListHelp)))
	b.WriteString("\n")
	return b.String()
}
