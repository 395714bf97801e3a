package deck

import (
	"bytes"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExplanationKind describes how an explanation is to be displayed.
type ExplanationKind int

// Explanation kinds
const (
	ExplanationNone ExplanationKind = iota
	ExplanationText
	ExplanationMarkup
)

func (k ExplanationKind) String() string {
	switch k {
	case ExplanationNone:
		return "none"
	case ExplanationText:
		return "text"
	case ExplanationMarkup:
		return "markup"
	}
	return "unknown"
}

// Explanation is the display-ready form of a card's explanation.
type Explanation struct {
	Kind ExplanationKind
	// HTML is safe to insert into a document. For ExplanationText it is the
	// escaped text; for ExplanationMarkup it is the sanitized markup.
	HTML string
	// Text is the explanation with all markup removed.
	Text string
}

// allowedTags is the set of presentational tags kept in explanations. The
// presence of any of them marks an explanation as markup.
var allowedTags = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
	atom.Br:     true,
	atom.P:      true,
	atom.Ul:     true,
	atom.Ol:     true,
	atom.Li:     true,
	atom.Code:   true,
	atom.Pre:    true,
	atom.Sub:    true,
	atom.Sup:    true,
	atom.Small:  true,
	atom.Mark:   true,
}

// droppedContent lists tags whose text content is discarded along with the
// tag itself.
var droppedContent = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// Explain returns the display form of the card's explanation.
func (c Card) Explain() Explanation {
	if !c.HasExplanation() {
		return Explanation{Kind: ExplanationNone}
	}
	if !IsMarkup(c.Explanation) {
		return Explanation{
			Kind: ExplanationText,
			HTML: EscapeText(c.Explanation),
			Text: c.Explanation,
		}
	}
	return Explanation{
		Kind: ExplanationMarkup,
		HTML: Sanitize(c.Explanation),
		Text: StripTags(c.Explanation),
	}
}

// EscapeText escapes s for use as HTML text content. Questions and answers
// always go through this.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// IsMarkup reports whether s contains at least one recognized tag.
func IsMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return false
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			if allowedTags[atom.Lookup(name)] {
				return true
			}
		}
	}
}

// Sanitize keeps the allowed tags, without attributes, and escapes all text.
// Other tags are removed; their text survives unless it belongs to a script
// or style element.
func Sanitize(s string) string {
	var buf bytes.Buffer
	walk(s, func(tt xhtml.TokenType, a atom.Atom, text string) {
		switch tt {
		case xhtml.TextToken:
			buf.WriteString(html.EscapeString(text))
		case xhtml.StartTagToken:
			if a == atom.Br {
				buf.WriteString("<br>")
				return
			}
			buf.WriteString("<" + a.String() + ">")
		case xhtml.SelfClosingTagToken:
			if a == atom.Br {
				buf.WriteString("<br>")
				return
			}
			buf.WriteString("<" + a.String() + "></" + a.String() + ">")
		case xhtml.EndTagToken:
			if a == atom.Br {
				return
			}
			buf.WriteString("</" + a.String() + ">")
		}
	})
	return buf.String()
}

// StripTags returns the text content of s, with <br> and block ends turned
// into line breaks.
func StripTags(s string) string {
	var buf bytes.Buffer
	walk(s, func(tt xhtml.TokenType, a atom.Atom, text string) {
		switch {
		case tt == xhtml.TextToken:
			buf.WriteString(text)
		case a == atom.Br && tt != xhtml.EndTagToken:
			buf.WriteString("\n")
		case tt == xhtml.EndTagToken && (a == atom.P || a == atom.Li || a == atom.Pre):
			buf.WriteString("\n")
		}
	})
	return strings.TrimSpace(buf.String())
}

// walk tokenizes s and calls fn for every text token and every allowed tag.
// Text inside script and style elements is skipped.
func walk(s string, fn func(tt xhtml.TokenType, a atom.Atom, text string)) {
	z := xhtml.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF, a strings.Reader has no other failure mode
			return
		case xhtml.TextToken:
			if skip == 0 {
				fn(tt, 0, string(z.Text()))
			}
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if droppedContent[a] {
				switch tt {
				case xhtml.StartTagToken:
					skip++
				case xhtml.EndTagToken:
					if skip > 0 {
						skip--
					}
				}
				continue
			}
			if skip == 0 && allowedTags[a] {
				fn(tt, a, "")
			}
		}
	}
}
