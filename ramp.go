package starscroll

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// speedRamp eases the scroll speed multiplier from 0 to 1. Durations are in
// the same unit the host passes to Background.Advance.
type speedRamp struct {
	tween  *gween.Tween
	factor float64
	done   bool
}

func newSpeedRamp(duration float32, fn ease.TweenFunc) *speedRamp {
	if fn == nil {
		fn = ease.Linear
	}
	return &speedRamp{tween: gween.New(0, 1, duration, fn)}
}

// step advances the ramp by delta and returns the average multiplier over
// the step, so a large delta is not charged entirely at the old speed.
func (r *speedRamp) step(delta float64) float64 {
	if r.done {
		return 1
	}
	before := r.factor
	val, finished := r.tween.Update(float32(delta))
	r.factor = clamp01(float64(val))
	if finished {
		r.factor = 1
		r.done = true
	}
	return (before + r.factor) / 2
}
