package engine

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Ticker is anything the world advances once per tick
type Ticker interface {
	Tick(dt time.Duration)
}

// Destroyable tickers are swept from the world at the end of the tick they report destroyed
type Destroyable interface {
	Destroyed() bool
}

// World owns the simulation clock and the ordered set of tickers
// Tick order is spawn order; tickers spawned during a tick join after it completes
type World struct {
	Clock *SimClock

	tickers []Ticker
	pending []Ticker
	ticking bool
	ticks   uint64
	log     *logrus.Entry
}

// NewWorld creates a world whose clock starts at epoch
func NewWorld(epoch time.Time, log *logrus.Entry) *World {
	return &World{
		Clock: NewSimClock(epoch),
		log:   log.WithField("component", "world"),
	}
}

// Spawn adds a ticker, deferred to end of tick when called from inside Tick
func (w *World) Spawn(t Ticker) {
	if w.ticking {
		w.pending = append(w.pending, t)
		return
	}
	w.tickers = append(w.tickers, t)
}

// Len returns the number of live tickers
func (w *World) Len() int { return len(w.tickers) }

// Ticks returns the number of completed ticks
func (w *World) Ticks() uint64 { return w.ticks }

// Tick advances game time by dt and runs every ticker once
// Returns false without running tickers while the clock is paused
func (w *World) Tick(dt time.Duration) bool {
	if !w.Clock.Advance(dt) {
		return false
	}

	w.ticking = true
	for _, t := range w.tickers {
		if d, ok := t.(Destroyable); ok && d.Destroyed() {
			continue
		}
		t.Tick(dt)
	}
	w.ticking = false

	w.sweep()
	if len(w.pending) > 0 {
		w.tickers = append(w.tickers, w.pending...)
		w.pending = w.pending[:0]
	}
	w.ticks++
	return true
}

// sweep drops destroyed tickers in place preserving order
func (w *World) sweep() {
	kept := w.tickers[:0]
	for _, t := range w.tickers {
		if d, ok := t.(Destroyable); ok && d.Destroyed() {
			w.log.WithField("tick", w.ticks).Debug("ticker removed")
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(w.tickers); i++ {
		w.tickers[i] = nil
	}
	w.tickers = kept
}
