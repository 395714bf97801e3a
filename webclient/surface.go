// +build js

package main

import (
	"fmt"
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/jquery"
	"github.com/gopherjs/jsbuiltin"

	"github.com/FlashbackSRS/flipdeck/deck"
	"github.com/FlashbackSRS/flipdeck/transition"
	"github.com/FlashbackSRS/flipdeck/viewer"
)

const (
	cardClass     = "card"
	innerClass    = "card-inner"
	flippedClass  = "flipped"
	hiddenClass   = "hidden"
	draggingClass = "dragging"
)

// domSurface renders cards as absolutely positioned elements under the card
// root, animated with CSS transitions.
type domSurface struct {
	root  jquery.JQuery
	cards map[transition.CardID]jquery.JQuery
	// done holds the completion callback of each card's running animation.
	done map[transition.CardID]func()

	explainArea jquery.JQuery
	explainText jquery.JQuery
}

var _ transition.Surface = &domSurface{}
var _ viewer.Flipper = &domSurface{}
var _ viewer.ExplanationExpander = &domSurface{}

func newSurface(root jquery.JQuery) *domSurface {
	return &domSurface{
		root:        root,
		cards:       make(map[transition.CardID]jquery.JQuery),
		done:        make(map[transition.CardID]func()),
		explainArea: jQuery("#explainArea"),
		explainText: jQuery("#explainText"),
	}
}

func (s *domSurface) ViewportWidth() float64 {
	return js.Global.Get("innerWidth").Float()
}

func (s *domSurface) RenderCard(id transition.CardID, card deck.Card) {
	front := jQuery(`<div class="card-face card-front"><div class="frage"></div></div>`)
	front.Find(".frage").SetText(card.Question)
	back := jQuery(`<div class="card-face card-back"><div class="antwort"></div></div>`)
	back.Find(".antwort").SetText(card.Answer)
	inner := jQuery(`<div>`).AddClass(innerClass).Append(front).Append(back)
	el := jQuery(`<div>`).AddClass(cardClass).SetAttr("data-id", string(id)).Append(inner)
	el.SetCss(map[string]interface{}{
		"position":       "absolute",
		"left":           "0",
		"top":            "0",
		"will-change":    "transform",
		"z-index":        "10",
		"pointer-events": "auto",
	})

	// Only the newest card takes input.
	s.root.Children("." + cardClass).SetCss(map[string]interface{}{
		"z-index":        "1",
		"pointer-events": "none",
	})

	el.Get(0).Call("addEventListener", "transitionend", func(ev *js.Object) {
		if ev.Get("propertyName").String() != "transform" {
			return
		}
		if done := s.done[id]; done != nil {
			delete(s.done, id)
			done()
		}
	})
	s.root.Append(el)
	s.cards[id] = el
}

func transform(o transition.Offset) string {
	if o == transition.Neutral {
		return ""
	}
	return fmt.Sprintf("translateX(%.1fpx) rotate(%.2fdeg)", o.X, o.Rotation)
}

func (s *domSurface) SetPosition(id transition.CardID, o transition.Offset) {
	el, ok := s.cards[id]
	if !ok {
		return
	}
	delete(s.done, id)
	style := el.Get(0).Get("style")
	style.Set("transition", "none")
	style.Set("transform", transform(o))
	if o == transition.Neutral {
		el.RemoveClass(draggingClass)
	} else {
		el.AddClass(draggingClass)
	}
}

func (s *domSurface) AnimateTo(id transition.CardID, o transition.Offset, d time.Duration, e transition.Easing, onComplete func()) {
	el, ok := s.cards[id]
	if !ok {
		return
	}
	el.RemoveClass(draggingClass)
	s.done[id] = onComplete
	node := el.Get(0)
	// Force a reflow, so the starting transform applies before the
	// transition is set.
	_ = node.Get("offsetHeight")
	nextFrame(func() {
		if cur, ok := s.cards[id]; !ok || cur.Get(0) != node {
			return
		}
		style := node.Get("style")
		style.Set("transition", fmt.Sprintf("transform %dms %s", d/time.Millisecond, e.CSS()))
		style.Set("transform", transform(o))
	})
}

func (s *domSurface) Remove(id transition.CardID) {
	el, ok := s.cards[id]
	if !ok {
		return
	}
	el.Remove()
	delete(s.cards, id)
	delete(s.done, id)
}

func (s *domSurface) ShowExplanation(ex deck.Explanation) {
	if s.explainArea.Length == 0 {
		return
	}
	switch ex.Kind {
	case deck.ExplanationMarkup:
		s.explainText.SetHtml(ex.HTML)
	default:
		s.explainText.SetText(ex.Text)
	}
	s.explainText.AddClass(hiddenClass)
	s.explainArea.RemoveClass(hiddenClass)
}

func (s *domSurface) HideExplanation() {
	if s.explainArea.Length == 0 {
		return
	}
	s.explainArea.AddClass(hiddenClass)
	s.explainText.AddClass(hiddenClass)
	s.explainText.SetText("")
}

func (s *domSurface) SetFlipped(id transition.CardID, flipped bool) {
	if el, ok := s.cards[id]; ok {
		el.ToggleClass(flippedClass, flipped)
	}
}

func (s *domSurface) SetExplanationExpanded(expanded bool) {
	s.explainText.ToggleClass(hiddenClass, !expanded)
}

// notice replaces the card area with a message.
func (s *domSurface) notice(text string) {
	s.root.Empty().Append(jQuery(`<div class="notice">`).SetText(text))
}

// nextFrame runs f before the next repaint, or soon on browsers without
// requestAnimationFrame.
func nextFrame(f func()) {
	if jsbuiltin.TypeOf(js.Global.Get("requestAnimationFrame")) == "function" {
		js.Global.Call("requestAnimationFrame", f)
		return
	}
	js.Global.Call("setTimeout", f, 16)
}
