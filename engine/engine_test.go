package engine

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func nullLog() *logrus.Entry {
	l, _ := test.NewNullLogger()
	return logrus.NewEntry(l)
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MockTimeProvider{}
	var _ TimeProvider = &SimClock{}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("initial time = %v, want %v", mock.Now(), epoch)
	}
	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	if want := epoch.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("after advances = %v, want %v", mock.Now(), want)
	}
	mock.SetTime(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("SetTime did not reset the mock")
	}
}

func TestSimClockPause(t *testing.T) {
	c := NewSimClock(epoch)
	c.Advance(100 * time.Millisecond)
	c.Pause()
	if c.Advance(time.Second) {
		t.Error("Advance during pause should report false")
	}
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, want 100ms", c.Elapsed())
	}
	c.Resume()
	c.Advance(50 * time.Millisecond)
	if want := epoch.Add(150 * time.Millisecond); !c.Now().Equal(want) {
		t.Errorf("Now = %v, want %v", c.Now(), want)
	}
}

type countTicker struct {
	name      string
	ticks     int
	destroyed bool
	onTick    func()
	order     *[]string
}

func (c *countTicker) Tick(time.Duration) {
	c.ticks++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
	if c.onTick != nil {
		c.onTick()
	}
}

func (c *countTicker) Destroyed() bool { return c.destroyed }

func TestWorldTickOrderAndSweep(t *testing.T) {
	w := NewWorld(epoch, nullLog())
	var order []string
	a := &countTicker{name: "a", order: &order}
	b := &countTicker{name: "b", order: &order}
	c := &countTicker{name: "c", order: &order}
	w.Spawn(a)
	w.Spawn(b)
	w.Spawn(c)

	// a destroys b during the tick; b must not run and is swept afterwards
	a.onTick = func() { b.destroyed = true }

	w.Tick(16 * time.Millisecond)
	if got := join(order); got != "ac" {
		t.Errorf("tick order = %q, want ac", got)
	}
	if w.Len() != 2 {
		t.Errorf("live tickers = %d, want 2", w.Len())
	}
	if w.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", w.Ticks())
	}
}

func TestWorldSpawnDuringTick(t *testing.T) {
	w := NewWorld(epoch, nullLog())
	late := &countTicker{name: "late"}
	spawner := &countTicker{name: "spawner"}
	spawner.onTick = func() {
		if spawner.ticks == 1 {
			w.Spawn(late)
		}
	}
	w.Spawn(spawner)

	w.Tick(time.Millisecond)
	if late.ticks != 0 {
		t.Error("ticker spawned during a tick must not run in the same tick")
	}
	w.Tick(time.Millisecond)
	if late.ticks != 1 {
		t.Errorf("late ticks = %d, want 1", late.ticks)
	}
}

func TestWorldPausedDoesNotTick(t *testing.T) {
	w := NewWorld(epoch, nullLog())
	c := &countTicker{}
	w.Spawn(c)
	w.Clock.Pause()
	if w.Tick(time.Millisecond) {
		t.Error("Tick should report false while paused")
	}
	if c.ticks != 0 {
		t.Error("tickers must not run while paused")
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	w := NewWorld(epoch, nullLog())
	s := NewScheduler(w, time.Millisecond, nullLog())
	before := 0
	s.BeforeTick = func(time.Duration) { before++ }

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, want nil on cancel", err)
	}
	if w.Ticks() == 0 || before == 0 {
		t.Errorf("scheduler never ticked: ticks=%d before=%d", w.Ticks(), before)
	}
}

func TestSchedulerRejectsZeroInterval(t *testing.T) {
	s := NewScheduler(NewWorld(epoch, nullLog()), 0, nullLog())
	if err := s.Run(context.Background()); err == nil {
		t.Error("zero interval should be rejected")
	}
}

func TestPool(t *testing.T) {
	type shell struct{ age int }
	p := NewPool(func() *shell { return &shell{} }, func(s *shell) { s.age = 0 })

	a := p.Get()
	a.age = 5
	p.Return(a)
	if p.Free() != 1 {
		t.Errorf("Free = %d, want 1", p.Free())
	}
	b := p.Get()
	if b != a || b.age != 0 {
		t.Error("pool should reuse and reset the returned instance")
	}
	p.Get()
	if p.Created() != 2 {
		t.Errorf("Created = %d, want 2", p.Created())
	}
}

func join(s []string) string {
	out := ""
	for _, x := range s {
		out += x
	}
	return out
}
