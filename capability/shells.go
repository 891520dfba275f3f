package capability

import (
	"time"

	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/weapon"
)

// EffectShell is the Effect.Kind of an ejected casing
const EffectShell = "shell"

// ShellEjector spawns one casing effect per round leaving the clip of the current weapon
// Casings come from the context effect pool and return to it when they expire
type ShellEjector struct {
	m     *entity.Model
	clock engine.TimeProvider
	pool  *engine.Pool[*entity.Effect]

	// Lifetime is how long a casing stays in the world
	Lifetime time.Duration

	weapon *weapon.Weapon
	clip   int
	live   []*entity.Effect
}

// NewShellEjector creates an ejector
func NewShellEjector(lifetime time.Duration) *ShellEjector {
	return &ShellEjector{Lifetime: lifetime}
}

func (s *ShellEjector) RegisterBindings(e *entity.Entity) error {
	s.m = e.Model()
	s.clock = e.Clock()
	s.pool = e.Context().Effects
	return nil
}

// Live returns the casings currently in the world
func (s *ShellEjector) Live() []*entity.Effect { return s.live }

// LateUpdate runs after the weapon handler so shots of this tick are counted
func (s *ShellEjector) LateUpdate(time.Duration) {
	now := s.clock.Now()
	kept := s.live[:0]
	for _, fx := range s.live {
		if now.Before(fx.Expires) {
			kept = append(kept, fx)
			continue
		}
		s.pool.Return(fx)
	}
	clear(s.live[len(kept):])
	s.live = kept

	w := s.m.CurrentWeapon.Get()
	if w != s.weapon {
		s.weapon = w
		s.clip = 0
		if w != nil {
			s.clip = w.AmmoInClip()
		}
		return
	}
	if w == nil {
		return
	}
	clip := w.AmmoInClip()
	for n := s.clip - clip; n > 0; n-- {
		fx := s.pool.Get()
		fx.Kind = EffectShell
		fx.Position = s.m.ProjectileOrigin.Get()
		fx.Expires = now.Add(s.Lifetime)
		s.live = append(s.live, fx)
	}
	s.clip = clip
}
