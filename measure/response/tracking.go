package response

import (
	"math"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tracking summarizes how closely a filter follows a moving target.
type Tracking struct {
	RMSError float64 // root mean square of target - output over the tween
	MaxLag   float64 // largest |target - output| over the tween
	Ticks    int     // ticks until the tween finished
	Final    float64 // output on the last tick
}

// TrackEased drives a filter seeded at from with a target eased from from to
// to over duration seconds, ticking every dt seconds until the tween ends.
// A nil easing is linear.
func TrackEased(tuning core.Tuning, dt, from, to, duration float64, easing ease.TweenFunc) (Tracking, error) {
	if err := tuning.Validate(); err != nil {
		return Tracking{}, err
	}

	if !core.IsFinite(dt) || dt <= 0 {
		return Tracking{}, ErrInvalidStep
	}

	if !core.IsFinite(duration) || duration <= 0 {
		return Tracking{}, ErrInvalidDuration
	}

	if easing == nil {
		easing = ease.Linear
	}

	tween := gween.New(float32(from), float32(to), float32(duration), easing)
	f := secondorder.NewWithTuning(tuning, from)

	var (
		tr   Tracking
		sum  float64
		done bool
	)

	for !done {
		var target float32
		target, done = tween.Update(float32(dt))

		y := f.Update(dt, float64(target))
		e := math.Abs(float64(target) - y)

		sum += e * e
		tr.MaxLag = math.Max(tr.MaxLag, e)
		tr.Ticks++
		tr.Final = y
	}

	tr.RMSError = math.Sqrt(sum / float64(tr.Ticks))

	return tr, nil
}
