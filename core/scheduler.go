package core

import (
	"context"
	"time"
)

// FrameFunc is invoked once on the tick following its request.
type FrameFunc func(now time.Time)

// NewScheduler creates a frame scheduler ticking at the configured rate
func NewScheduler(cfg TimeConfiguration) *Scheduler {
	var interval time.Duration
	if cfg.FramesPerSecond == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / (time.Duration)(cfg.FramesPerSecond)
	}

	ticker := time.NewTicker(interval)
	return &Scheduler{
		fps:   cfg.FramesPerSecond,
		ticks: ticker.C,
		stop:  ticker.Stop,
	}
}

// Scheduler runs frame callbacks on the goroutine that calls Run.
// A callback runs once, so a callback that wants to keep running
// requests itself again, the same way an animation frame does.
type Scheduler struct {
	fps   int
	ticks <-chan time.Time
	stop  func()

	pending []FrameFunc
	frames  uint64
}

// Fps gets the set frames per second
func (s *Scheduler) Fps() int {
	return s.fps
}

// Frames returns the number of ticks that ran callbacks
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Pending returns the number of callbacks waiting for the next tick
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// RequestFrame queues f for the next tick. Requests made while a tick
// is running are deferred to the tick after it.
func (s *Scheduler) RequestFrame(f FrameFunc) {
	s.pending = append(s.pending, f)
}

// Run waits for ticks until ctx is done or pump returns false. On every
// tick pump is called first, then the callbacks queued before the tick.
// A nil pump is treated as always true. Run returns ctx.Err() when the
// context ends the loop and nil when pump does.
func (s *Scheduler) Run(ctx context.Context, pump func() bool) error {
	defer s.stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-s.ticks:
			if pump != nil && !pump() {
				return nil
			}
			s.tick(now)
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	if len(s.pending) == 0 {
		return
	}
	frames := s.pending
	s.pending = nil
	for _, f := range frames {
		f(now)
	}
	s.frames++
}
