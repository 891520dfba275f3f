package input

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-model/config"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseIntent(t *testing.T) {
	for i := IntentQuit; i < intentCount; i++ {
		got, ok := ParseIntent(i.String())
		if !ok || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, ok)
		}
	}
	if _, ok := ParseIntent("teleport"); ok {
		t.Error("unknown name should not parse")
	}
	if IntentWeapon3.WeaponSlot() != 2 || IntentFire.WeaponSlot() != -1 {
		t.Error("WeaponSlot mismatch")
	}
}

func TestSandboxKeyTable(t *testing.T) {
	cfg, err := config.Sandbox()
	if err != nil {
		t.Fatal(err)
	}
	kt, err := NewKeyTable(cfg.Keys)
	if err != nil {
		t.Fatalf("sandbox keys: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReload},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), IntentRun},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentFire},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentLookLeft},
		{"ctrl", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), IntentQuit},
		{"builtin quit", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyTableErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		want     error
	}{
		{"unknown intent", map[string]string{"teleport": "t"}, ErrUnknownIntent},
		{"unknown key", map[string]string{"fire": "mouse1"}, ErrUnknownKey},
		{"bad ctrl", map[string]string{"fire": "ctrl+1"}, ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyTable(tt.bindings)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewKeyTable(map[string]string{"fire": "f", "interact": "f"}); err == nil {
		t.Error("two intents on one key should fail")
	}
	if _, err := NewKeyTable(map[string]string{"fire": "ctrl+c"}); err == nil {
		t.Error("ctrl+c is reserved for quit")
	}
}

func TestStateEdges(t *testing.T) {
	s := NewState(100 * time.Millisecond)

	s.Press(IntentFire, t0)
	if !s.IsDown(IntentFire) || !s.IsHeld(IntentFire) {
		t.Fatal("first press should set down and held")
	}
	s.EndTick()
	if s.IsDown(IntentFire) {
		t.Error("down must last one tick")
	}

	// Auto-repeat keeps the hold without a new edge
	s.Press(IntentFire, t0.Add(50*time.Millisecond))
	s.Expire(t0.Add(120 * time.Millisecond))
	if s.IsDown(IntentFire) || !s.IsHeld(IntentFire) {
		t.Error("repeat inside the window should extend the hold")
	}

	s.Expire(t0.Add(150 * time.Millisecond))
	if !s.IsUp(IntentFire) || s.IsHeld(IntentFire) {
		t.Error("hold should expire after the window")
	}
	s.EndTick()
	if s.IsUp(IntentFire) {
		t.Error("up must last one tick")
	}

	s.Release(IntentJump)
	if s.IsUp(IntentJump) {
		t.Error("releasing an unheld intent has no edge")
	}
}

func TestStateAxes(t *testing.T) {
	s := NewState(0)
	if s.HoldWindow != DefaultHoldWindow {
		t.Errorf("HoldWindow = %v, want default", s.HoldWindow)
	}
	s.Press(IntentMoveForward, t0)
	s.Press(IntentMoveLeft, t0)
	s.Press(IntentMoveRight, t0)
	s.Press(IntentLookUp, t0)

	if m := s.Movement(); m.X != 0 || m.Y != 1 {
		t.Errorf("Movement = %+v, want (0, 1)", m)
	}
	if l := s.Look(); l.X != 0 || l.Y != 1 {
		t.Errorf("Look = %+v, want (0, 1)", l)
	}
}
