// +build js

package main

import (
	"github.com/flimzy/log"
	"github.com/gopherjs/jquery"
	"github.com/gopherjs/jsbuiltin"

	"github.com/FlashbackSRS/flipdeck/viewer"
)

type pointer struct {
	id int
	x  float64
}

func pointerOf(e *jquery.Event) pointer {
	ev := e.Get("originalEvent")
	return pointer{
		id: ev.Get("pointerId").Int(),
		x:  ev.Get("clientX").Float(),
	}
}

// bindCards routes pointer and click events on the card stack to v.
func bindCards(v *viewer.Viewer, root jquery.JQuery) {
	root.On("pointerdown", "."+innerClass, func(e *jquery.Event) {
		p := pointerOf(e)
		if target := e.Get("currentTarget"); jsbuiltin.TypeOf(target.Get("setPointerCapture")) == "function" {
			target.Call("setPointerCapture", p.id)
		}
		v.PointerDown(p.id, p.x)
	})
	root.On("click", "."+innerClass, func(e *jquery.Event) {
		v.Click()
	})
	doc := jQuery(document)
	doc.On("pointermove", func(e *jquery.Event) {
		p := pointerOf(e)
		v.PointerMove(p.id, p.x)
		if v.Dragging() {
			// keep the page from scrolling
			e.PreventDefault()
		}
	})
	doc.On("pointerup", func(e *jquery.Event) {
		v.PointerUp(pointerOf(e).id)
	})
	doc.On("pointercancel", func(e *jquery.Event) {
		v.PointerCancel(pointerOf(e).id)
	})
	// Fires after every pointerup too, by which point the gesture is over and
	// the cancel does nothing.
	doc.On("lostpointercapture", func(e *jquery.Event) {
		v.PointerCancel(pointerOf(e).id)
	})
}

// bindControls wires the optional page controls. Missing elements are
// simply not wired.
func bindControls(v *viewer.Viewer) {
	jQuery(".tip-left").On("click", func(e *jquery.Event) {
		e.StopPropagation()
		v.Advance()
	})
	jQuery(".tip-right").On("click", func(e *jquery.Event) {
		e.StopPropagation()
		v.GoBack()
	})
	jQuery("#explainToggle").On("click", func(e *jquery.Event) {
		v.ToggleExplanation()
	})

	overlay := jQuery("#listOverlay")
	if overlay.Length == 0 {
		return
	}
	list := &cardList{viewer: v, overlay: overlay, items: jQuery("#questionList")}
	jQuery("#listButton").On("click", func(e *jquery.Event) {
		list.toggle()
	})
	overlay.On("click", func(e *jquery.Event) {
		// a click outside the panel
		if e.Get("target") == overlay.Get(0) {
			list.close()
		}
	})
	overlay.Find(".overlay-close").On("click", func(e *jquery.Event) {
		list.close()
	})
}

type cardList struct {
	viewer  *viewer.Viewer
	overlay jquery.JQuery
	items   jquery.JQuery
}

func (l *cardList) toggle() {
	if l.overlay.HasClass(hiddenClass) {
		l.open()
		return
	}
	l.close()
}

func (l *cardList) open() {
	l.items.Empty()
	for _, entry := range l.viewer.Entries() {
		index := entry.Index
		li := jQuery("<li>").SetText(entry.Label)
		if entry.Current {
			li.AddClass("current")
		}
		li.On("click", func(e *jquery.Event) {
			if err := l.viewer.JumpTo(index); err != nil {
				log.Printf("Jump to card %d failed: %s\n", index, err)
			}
			l.close()
		})
		l.items.Append(li)
	}
	l.overlay.RemoveClass(hiddenClass)
}

func (l *cardList) close() {
	l.overlay.AddClass(hiddenClass)
}
