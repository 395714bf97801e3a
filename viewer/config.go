package viewer

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/gesture"
	"github.com/FlashbackSRS/flipdeck/transition"
)

// Config keys
const (
	KeyAdvanceExit     = "advance.exit"
	KeyAdvanceFallback = "advance.fallback"
	KeyGoBackExit      = "goback.exit"
	KeyGoBackFallback  = "goback.fallback"
	KeyEnter           = "enter.duration"
	KeyEnterFallback   = "enter.fallback"
	KeyBounce          = "bounce.duration"
	KeyGestureRatio    = "gesture.ratio"
	KeyGestureMax      = "gesture.max"
	KeyGestureSlop     = "gesture.slop"
	KeyLocale          = "locale"
)

// OptionsFromConfig reads timings and gesture settings from c. Unset keys
// keep their defaults. Every invalid key is reported.
func OptionsFromConfig(c *config.Conf) (Options, error) {
	var errs *multierror.Error
	duration := func(key string, def time.Duration) time.Duration {
		d, err := c.GetDuration(key, def)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		return d
	}
	positive := func(key string, def float64) float64 {
		f, err := c.GetFloat(key, def)
		if err == nil && f <= 0 {
			err = errors.Errorf("config key %s: must be positive", key)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		return f
	}
	t := transition.DefaultTimings()
	g := gesture.DefaultConfig()
	opts := Options{
		Options: transition.Options{
			Timings: transition.Timings{
				AdvanceExit:     duration(KeyAdvanceExit, t.AdvanceExit),
				AdvanceFallback: duration(KeyAdvanceFallback, t.AdvanceFallback),
				GoBackExit:      duration(KeyGoBackExit, t.GoBackExit),
				GoBackFallback:  duration(KeyGoBackFallback, t.GoBackFallback),
				Enter:           duration(KeyEnter, t.Enter),
				EnterFallback:   duration(KeyEnterFallback, t.EnterFallback),
				Bounce:          duration(KeyBounce, t.Bounce),
			},
		},
		Gesture: gesture.Config{
			Ratio:        positive(KeyGestureRatio, g.Ratio),
			MaxThreshold: positive(KeyGestureMax, g.MaxThreshold),
			Slop:         positive(KeyGestureSlop, g.Slop),
		},
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Options{}, errors.Wrap(err, "invalid config")
	}
	return opts, nil
}
