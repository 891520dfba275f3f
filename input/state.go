package input

import (
	"time"

	"github.com/lixenwraith/fps-model/vmath"
)

// DefaultHoldWindow covers the initial auto-repeat delay of common terminals
const DefaultHoldWindow = 550 * time.Millisecond

// State is the per-tick intent snapshot
//
// Terminals report presses and auto-repeats but never releases, so an intent
// counts as held until HoldWindow passes without a repeat. Down and Up are
// edge flags valid for one tick and cleared by EndTick.
type State struct {
	HoldWindow time.Duration

	last [intentCount]time.Time
	held [intentCount]bool
	down [intentCount]bool
	up   [intentCount]bool
}

// NewState creates a snapshot with the given hold window, DefaultHoldWindow when zero
func NewState(hold time.Duration) *State {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &State{HoldWindow: hold}
}

// Press records a key press or auto-repeat of i at now
func (s *State) Press(i Intent, now time.Time) {
	if i == IntentNone || i >= intentCount {
		return
	}
	if !s.held[i] {
		s.held[i] = true
		s.down[i] = true
	}
	s.last[i] = now
}

// Release ends a hold immediately, for backends that report releases
func (s *State) Release(i Intent) {
	if i >= intentCount || !s.held[i] {
		return
	}
	s.held[i] = false
	s.up[i] = true
}

// Expire releases every held intent without a press inside the hold window
func (s *State) Expire(now time.Time) {
	for i := range s.held {
		if s.held[i] && now.Sub(s.last[i]) >= s.HoldWindow {
			s.Release(Intent(i))
		}
	}
}

// EndTick clears the edge flags
func (s *State) EndTick() {
	s.down = [intentCount]bool{}
	s.up = [intentCount]bool{}
}

// IsDown reports a press edge this tick
func (s *State) IsDown(i Intent) bool { return i < intentCount && s.down[i] }

// IsUp reports a release edge this tick
func (s *State) IsUp(i Intent) bool { return i < intentCount && s.up[i] }

// IsHeld reports whether i is held
func (s *State) IsHeld(i Intent) bool { return i < intentCount && s.held[i] }

// Axis returns -1, 0 or 1 from a pair of held intents
func (s *State) Axis(neg, pos Intent) float64 {
	var v float64
	if s.IsHeld(pos) {
		v++
	}
	if s.IsHeld(neg) {
		v--
	}
	return v
}

// Movement returns the strafe (X) and forward (Y) input
func (s *State) Movement() vmath.Vec2 {
	return vmath.Vec2{
		X: s.Axis(IntentMoveLeft, IntentMoveRight),
		Y: s.Axis(IntentMoveBack, IntentMoveForward),
	}
}

// Look returns the yaw (X) and pitch (Y) input
func (s *State) Look() vmath.Vec2 {
	return vmath.Vec2{
		X: s.Axis(IntentLookLeft, IntentLookRight),
		Y: s.Axis(IntentLookDown, IntentLookUp),
	}
}
