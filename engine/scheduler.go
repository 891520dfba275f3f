package engine

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler drives a World on a fixed real-time tick
// Game logic only ever runs on the scheduler goroutine
type Scheduler struct {
	world    *World
	interval time.Duration
	log      *logrus.Entry

	// BeforeTick runs on the scheduler goroutine ahead of each world tick (input drain)
	BeforeTick func(dt time.Duration)

	// AfterTick runs after each world tick (render)
	AfterTick func()
}

// NewScheduler creates a scheduler ticking world every interval
func NewScheduler(world *World, interval time.Duration, log *logrus.Entry) *Scheduler {
	return &Scheduler{
		world:    world,
		interval: interval,
		log:      log.WithField("component", "scheduler"),
	}
}

// Interval returns the tick interval
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Step runs one scheduled tick synchronously
func (s *Scheduler) Step() {
	if s.BeforeTick != nil {
		s.BeforeTick(s.interval)
	}
	s.world.Tick(s.interval)
	if s.AfterTick != nil {
		s.AfterTick()
	}
}

// Run ticks until ctx is cancelled; cancellation is a clean stop and returns nil
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return errors.New("scheduler: tick interval must be positive")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.WithField("interval", s.interval).Info("scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.WithField("ticks", s.world.Ticks()).Info("scheduler stopped")
			return nil
		case <-ticker.C:
			s.Step()
		}
	}
}
