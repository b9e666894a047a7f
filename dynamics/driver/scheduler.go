package driver

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Phases for Scheduler.Add. Orientation drivers read the velocity of the
// Position drivers they lean with, so they run in a later phase.
const (
	PhaseMovement = iota
	PhaseOrientation
)

// Ticker is a driver that can be routed host ticks.
type Ticker interface {
	Executor
	Mode() UpdateMode
}

// Scheduler ticks many independent drivers. Phases run in ascending order;
// drivers within one phase run concurrently, so a driver must not share
// filters or driven entities with another driver of the same phase.
type Scheduler struct {
	phases [][]Ticker
	limit  int
}

// NewScheduler returns a scheduler running at most limit drivers at once.
// limit <= 0 means no limit.
func NewScheduler(limit int) *Scheduler {
	return &Scheduler{limit: limit}
}

// Add registers d in the given phase.
func (s *Scheduler) Add(phase int, d Ticker) {
	if phase < 0 {
		phase = 0
	}

	for len(s.phases) <= phase {
		s.phases = append(s.phases, nil)
	}

	s.phases[phase] = append(s.phases[phase], d)
}

// Len returns the number of registered drivers.
func (s *Scheduler) Len() int {
	n := 0
	for _, p := range s.phases {
		n += len(p)
	}
	return n
}

// Tick executes every driver configured for mode, phase by phase. Ticks with
// dt <= 0 are skipped. A driver that panics is reported as an error and the
// remaining phases are not run.
func (s *Scheduler) Tick(mode UpdateMode, dt float64) error {
	if !(dt > 0) {
		return nil
	}

	for _, phase := range s.phases {
		var g errgroup.Group
		if s.limit > 0 {
			g.SetLimit(s.limit)
		}

		for _, d := range phase {
			if d.Mode() != mode {
				continue
			}

			g.Go(func() error {
				return execute(d, dt)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

func execute(d Ticker, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("driver: %T panicked: %v", d, r)
		}
	}()

	d.Execute(dt)

	return nil
}
