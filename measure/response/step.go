package response

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response measurements.
var (
	ErrEmptyResponse   = errors.New("response: trajectory is empty")
	ErrInvalidStep     = errors.New("response: tick length must be positive and finite")
	ErrInvalidTicks    = errors.New("response: tick count must be positive")
	ErrZeroAmplitude   = errors.New("response: step start and end are equal")
	ErrInvalidDuration = errors.New("response: duration must be positive and finite")
	ErrInvalidLength   = errors.New("response: length must be a power of two >= 2")
)

const (
	riseLow      = 0.1
	riseHigh     = 0.9
	settleBand   = 0.02
	monotoneSlop = 1e-12
)

// StepMetrics describes a step response. Times are in seconds, measured
// from the start of the step; a time is -1 when its threshold is never
// reached within the trajectory.
type StepMetrics struct {
	Overshoot    float64 // peak excursion past the end value, as a fraction of the step
	RiseTime     float64 // 10% to 90% of the step
	SettlingTime float64 // time after which the output stays within 2% of the step
	FinalError   float64 // |last sample - end value|
	PeakIndex    int     // sample index of the largest normalized output
	Monotone     bool    // the distance to the end value never grows
	Finite       bool    // no sample is NaN or Inf
}

// Analyzer computes step metrics from trajectories sampled every Step
// seconds. Sample i is the output after tick i+1.
type Analyzer struct {
	Step float64
}

// NewAnalyzer creates an analyzer for the given tick length.
func NewAnalyzer(step float64) *Analyzer {
	return &Analyzer{Step: step}
}

// SimulateStep runs a filter seeded at from toward a constant to for ticks
// ticks of dt seconds and returns the outputs.
func SimulateStep(tuning core.Tuning, dt float64, ticks int, from, to float64) ([]float64, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	if !core.IsFinite(dt) || dt <= 0 {
		return nil, ErrInvalidStep
	}

	if ticks <= 0 {
		return nil, ErrInvalidTicks
	}

	f := secondorder.NewWithTuning(tuning, from)
	out := make([]float64, ticks)

	for i := range out {
		out[i] = f.Update(dt, to)
	}

	return out, nil
}

// Analyze computes step metrics of traj for a step from from to to.
// A trajectory containing NaN or Inf yields Finite == false and no other
// metrics.
func (a *Analyzer) Analyze(traj []float64, from, to float64) (StepMetrics, error) {
	if len(traj) == 0 {
		return StepMetrics{}, ErrEmptyResponse
	}

	if !core.IsFinite(a.Step) || a.Step <= 0 {
		return StepMetrics{}, ErrInvalidStep
	}

	if from == to {
		return StepMetrics{}, ErrZeroAmplitude
	}

	for _, v := range traj {
		if !core.IsFinite(v) {
			return StepMetrics{RiseTime: -1, SettlingTime: -1, FinalError: math.Inf(1)}, nil
		}
	}

	u := normalize(traj, from, to)

	m := StepMetrics{
		FinalError: math.Abs(traj[len(traj)-1] - to),
		Monotone:   true,
		Finite:     true,
		RiseTime:   -1,
	}

	for i, v := range u {
		if v > u[m.PeakIndex] {
			m.PeakIndex = i
		}

		if i > 0 && math.Abs(1-v) > math.Abs(1-u[i-1])+monotoneSlop {
			m.Monotone = false
		}
	}

	m.Overshoot = math.Max(0, u[m.PeakIndex]-1)

	low, high := firstAtLeast(u, riseLow), firstAtLeast(u, riseHigh)
	if low >= 0 && high >= 0 {
		m.RiseTime = float64(high-low) * a.Step
	}

	m.SettlingTime = a.settlingTime(u)

	return m, nil
}

// normalize maps traj onto the unit step: from becomes 0, to becomes 1.
func normalize(traj []float64, from, to float64) []float64 {
	u := make([]float64, len(traj))
	for i, v := range traj {
		u[i] = v - from
	}

	vecmath.ScaleBlock(u, u, 1/(to-from))

	return u
}

func firstAtLeast(u []float64, level float64) int {
	for i, v := range u {
		if v >= level {
			return i
		}
	}
	return -1
}

func (a *Analyzer) settlingTime(u []float64) float64 {
	last := -1
	for i, v := range u {
		if math.Abs(v-1) > settleBand {
			last = i
		}
	}

	if last == len(u)-1 {
		return -1
	}

	return float64(last+2) * a.Step
}
