package viewer

import (
	"strings"
	"testing"
	"time"

	"github.com/flimzy/diff"
	"github.com/flimzy/testy"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/gesture"
	"github.com/FlashbackSRS/flipdeck/transition"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := OptionsFromConfig(config.New(nil))
		if err != nil {
			t.Fatal(err)
		}
		if d := diff.Interface(transition.DefaultTimings(), opts.Timings); d != nil {
			t.Error(d)
		}
		if d := diff.Interface(gesture.DefaultConfig(), opts.Gesture); d != nil {
			t.Error(d)
		}
	})
	t.Run("overrides", func(t *testing.T) {
		opts, err := OptionsFromConfig(config.New(map[string]string{
			KeyEnter:        "1s",
			KeyBounce:       "0s",
			KeyGestureRatio: "0.1",
			KeyGestureSlop:  "10",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if opts.Timings.Enter != time.Second || opts.Timings.Bounce != 0 {
			t.Errorf("Unexpected timings: %+v", opts.Timings)
		}
		if opts.Timings.AdvanceExit != 280*time.Millisecond {
			t.Errorf("Unexpected advance timing: %s", opts.Timings.AdvanceExit)
		}
		expected := gesture.Config{Ratio: 0.1, MaxThreshold: 60, Slop: 10}
		if d := diff.Interface(expected, opts.Gesture); d != nil {
			t.Error(d)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := OptionsFromConfig(config.New(map[string]string{
			KeyAdvanceExit: "later",
			KeyGestureMax:  "0",
		}))
		testy.ErrorRE(t, "^invalid config: 2 errors occurred", err)
		if !strings.Contains(err.Error(), "config key gesture.max: must be positive") {
			t.Errorf("Missing gesture.max error: %s", err)
		}
		if !strings.Contains(err.Error(), "config key advance.exit") {
			t.Errorf("Missing advance.exit error: %s", err)
		}
	})
}
