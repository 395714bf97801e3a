package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxCardWidth = 48
	minCardWidth = 16
	cardLines    = 5
	// skewDivisor converts a card's tilt into columns of skew per row.
	skewDivisor = 24
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	toggleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	currentStyle  = lipgloss.NewStyle().Bold(true)
	wrapStyle     = lipgloss.NewStyle()
)

func cardWidth(viewport int) int {
	w := viewport - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(wrapStyle.Width(width).Render(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// box draws a card with the given text. All rows have the same width.
func box(text string, width int) [][]rune {
	inner := width - 4
	lines := wrap(text, inner)
	if len(lines) > cardLines {
		lines = lines[:cardLines]
	}
	top := (cardLines - len(lines)) / 2
	rows := make([][]rune, 0, cardLines+2)
	rows = append(rows, []rune("╭"+strings.Repeat("─", width-2)+"╮"))
	for i := 0; i < cardLines; i++ {
		var line string
		if j := i - top; j >= 0 && j < len(lines) {
			line = lines[j]
		}
		pad := inner - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		rows = append(rows, []rune("│ "+strings.Repeat(" ", left)+line+strings.Repeat(" ", pad-left)+" │"))
	}
	rows = append(rows, []rune("╰"+strings.Repeat("─", width-2)+"╯"))
	return rows
}

// canvas is a viewport-wide grid of cells, each remembering the style of the
// card that drew it.
type canvas struct {
	cells  [][]rune
	styles [][]*lipgloss.Style
}

func newCanvas(rows, width int) *canvas {
	c := &canvas{
		cells:  make([][]rune, rows),
		styles: make([][]*lipgloss.Style, rows),
	}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(" ", width))
		c.styles[i] = make([]*lipgloss.Style, width)
	}
	return c
}

// place draws rows at column x, skewed for a tilt of rotation degrees. Cells
// outside the viewport are clipped.
func (c *canvas) place(rows [][]rune, x int, rotation float64, style *lipgloss.Style) {
	mid := float64(len(rows)-1) / 2
	for r, row := range rows {
		if r >= len(c.cells) {
			break
		}
		skew := int(math.Round((mid - float64(r)) * rotation / skewDivisor))
		for i, ch := range row {
			col := x + skew + i
			if col < 0 || col >= len(c.cells[r]) {
				continue
			}
			c.cells[r][col] = ch
			c.styles[r][col] = style
		}
	}
}

// line renders row r, styling each run of cells drawn by the same card.
func (c *canvas) line(r int) string {
	cells, styles := c.cells[r], c.styles[r]
	end := len(cells)
	for end > 0 && cells[end-1] == ' ' {
		end--
	}
	var b strings.Builder
	for start := 0; start < end; {
		style := styles[start]
		stop := start + 1
		for stop < end && styles[stop] == style {
			stop++
		}
		text := string(cells[start:stop])
		if style != nil {
			text = style.Render(text)
		}
		b.WriteString(text)
		start = stop
	}
	return b.String()
}

// renderCards draws the card stack, the newest card on top.
func (s *Surface) renderCards() string {
	width := cardWidth(s.width)
	c := newCanvas(cardLines+2, s.width)
	for _, card := range s.stack() {
		text, style := card.content.Question, &questionStyle
		if card.flipped {
			text, style = card.content.Answer, &answerStyle
		}
		x := (s.width-width)/2 + int(math.Round(card.offset.X))
		c.place(box(text, width), x, card.offset.Rotation, style)
	}
	lines := make([]string, len(c.cells))
	for i := range c.cells {
		lines[i] = c.line(i)
	}
	return strings.Join(lines, "\n")
}
