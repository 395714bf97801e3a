package cardview

import (
	"testing"

	"github.com/flimzy/diff"

	"github.com/FlashbackSRS/flipdeck/deck"
)

func TestFlip(t *testing.T) {
	s := New(deck.Card{Question: "Q", Answer: "A", Explanation: "Because."})
	if d := diff.Interface(Visibility{}, s.Visibility()); d != nil {
		t.Fatal(d)
	}
	for i := 0; i < 3; i++ {
		v := s.Flip()
		if d := diff.Interface(Visibility{Flipped: true, Explainable: true}, v); d != nil {
			t.Fatalf("flip %d: %s", i, d)
		}
		if v, ok := s.ToggleExplanation(); !ok || !v.Expanded {
			t.Fatalf("flip %d: expected the explanation to expand", i)
		}
		if v := s.Flip(); v != (Visibility{}) {
			t.Fatalf("flip %d: expected everything hidden, got %+v", i, v)
		}
	}
}

func TestToggleExplanation(t *testing.T) {
	s := New(deck.Card{Explanation: "<b>why</b>"})
	if _, ok := s.ToggleExplanation(); ok {
		t.Error("The explanation must not toggle on the question face")
	}
	s.Flip()
	v, _ := s.ToggleExplanation()
	if !v.Expanded {
		t.Error("Expected expanded")
	}
	v, _ = s.ToggleExplanation()
	if v.Expanded {
		t.Error("Expected collapsed")
	}
	if s.Explanation().Kind != deck.ExplanationMarkup {
		t.Errorf("Unexpected kind %s", s.Explanation().Kind)
	}
}

func TestSentinelExplanation(t *testing.T) {
	for _, explanation := range []string{"/", ""} {
		s := New(deck.Card{Explanation: explanation})
		for i := 0; i < 4; i++ {
			if v := s.Flip(); v.Explainable || v.Expanded {
				t.Errorf("%q: explanation offered: %+v", explanation, v)
			}
			if _, ok := s.ToggleExplanation(); ok {
				t.Errorf("%q: explanation toggled", explanation)
			}
		}
	}
}
