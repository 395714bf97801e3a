package gesture

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/flimzy/diff"
)

func TestThreshold(t *testing.T) {
	conf := DefaultConfig()
	tests := []struct {
		width    float64
		expected float64
	}{
		{width: 400, expected: 28},
		{width: 1000, expected: 60},
		{width: 0, expected: 60},
	}
	for _, test := range tests {
		if result := conf.Threshold(test.width); math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("width %v: expected %v, got %v", test.width, test.expected, result)
		}
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		dx       float64
		expected float64
	}{
		{dx: 0, expected: 0},
		{dx: 30, expected: 2},
		{dx: -30, expected: -2},
		{dx: 180, expected: 12},
		{dx: -500, expected: -12},
	}
	for _, test := range tests {
		if result := Rotation(test.dx); result != test.expected {
			t.Errorf("dx %v: expected %v, got %v", test.dx, test.expected, result)
		}
	}
}

type sample struct {
	x    float64
	busy bool
}

func TestRelease(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		samples  []sample
		busy     bool
		expected Outcome
		tap      bool
	}{
		{
			name:     "no movement",
			width:    1000,
			expected: Reset,
			tap:      true,
		},
		{
			name:     "within slop",
			width:    1000,
			samples:  []sample{{x: 105}, {x: 94}},
			expected: Reset,
			tap:      true,
		},
		{
			name:     "short drag left",
			width:    1000,
			samples:  []sample{{x: 80}, {x: 50}},
			expected: Reset,
		},
		{
			name:     "exact threshold left",
			width:    1000,
			samples:  []sample{{x: 40}},
			expected: Advance,
		},
		{
			name:     "exact threshold right",
			width:    1000,
			samples:  []sample{{x: 160}},
			expected: GoBack,
		},
		{
			name:     "narrow viewport",
			width:    400,
			samples:  []sample{{x: 71}},
			expected: Advance,
		},
		{
			name:     "tap below a small threshold",
			width:    80,
			samples:  []sample{{x: 94}},
			expected: Reset,
			tap:      true,
		},
		{
			name:     "drag past a small threshold",
			width:    80,
			samples:  []sample{{x: 93}},
			expected: Advance,
		},
		{
			name:     "returned to start",
			width:    1000,
			samples:  []sample{{x: 0}, {x: 102}},
			expected: Reset,
		},
		{
			name:     "commit while busy",
			width:    1000,
			samples:  []sample{{x: 0}},
			busy:     true,
			expected: Reset,
		},
		{
			name:     "samples during transition are ignored",
			width:    1000,
			samples:  []sample{{x: 90}, {x: 0, busy: true}},
			expected: Reset,
		},
		{
			name:     "late samples still count",
			width:    1000,
			samples:  []sample{{x: 0, busy: true}, {x: 20}},
			expected: Advance,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Begin(DefaultConfig(), 1, 100)
			for _, smp := range test.samples {
				s.Move(1, smp.x, smp.busy)
			}
			if result := s.Release(test.width, test.busy); result != test.expected {
				t.Errorf("Expected %s, got %s\n%s", test.expected, result, spew.Sdump(s))
			}
			if s.IsTap() != test.tap {
				t.Errorf("Expected tap=%t", test.tap)
			}
		})
	}
}

func TestMoveFeedback(t *testing.T) {
	s := Begin(DefaultConfig(), 7, 200)
	if _, ok := s.Move(7, 204, false); ok {
		t.Error("No feedback expected within the slop")
	}
	fb, ok := s.Move(7, 170, false)
	if !ok {
		t.Fatal("Expected feedback once dragging")
	}
	if d := diff.Interface(Feedback{DX: -30, Rotation: -2}, fb); d != nil {
		t.Error(d)
	}
	// Back inside the slop, the drag continues.
	if _, ok := s.Move(7, 198, false); !ok {
		t.Error("Expected feedback to continue after the drag started")
	}
	if _, ok := s.Move(7, 100, true); ok {
		t.Error("No feedback expected while busy")
	}
	if s.LastX != 198 {
		t.Errorf("Busy samples must not be recorded, LastX = %v", s.LastX)
	}
}

func TestMoveOtherPointer(t *testing.T) {
	s := Begin(DefaultConfig(), 1, 100)
	if _, ok := s.Move(2, 0, false); ok {
		t.Error("Samples from other pointers must be ignored")
	}
	if s.Release(1000, false) != Reset {
		t.Error("Another pointer's movement must not commit")
	}
}

func TestCancel(t *testing.T) {
	s := Begin(DefaultConfig(), 1, 100)
	s.Move(1, -400, false)
	if o := s.Cancel(); o != Reset {
		t.Errorf("Cancel must always reset, got %s", o)
	}
}
