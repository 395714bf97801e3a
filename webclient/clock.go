// +build js

package main

import (
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/FlashbackSRS/flipdeck/transition"
)

// jsClock schedules callbacks on the browser event loop.
type jsClock struct{}

var _ transition.Clock = jsClock{}

type jsTimer struct {
	handle *js.Object
	done   bool
}

func (jsClock) AfterFunc(d time.Duration, f func()) transition.Timer {
	t := &jsTimer{}
	t.handle = js.Global.Call("setTimeout", func() {
		if t.done {
			return
		}
		t.done = true
		f()
	}, int64(d/time.Millisecond))
	return t
}

func (t *jsTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global.Call("clearTimeout", t.handle)
	return true
}
