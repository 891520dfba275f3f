package entity

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/vmath"
)

// ReticleState is what the HUD crosshair shows
type ReticleState uint8

const (
	ReticleNone ReticleState = iota
	ReticleCrosshair
	ReticleInteraction
)

// HUD is the display sink controllers report to
type HUD interface {
	SetReticle(state ReticleState)
	Notify(msg string)
}

// Effect is a short-lived spawned object such as an ejected shell or muzzle flash
type Effect struct {
	Kind     string
	Position vmath.Vec3
	Expires  time.Time
}

// Context carries the world-scoped services an entity and its components need
type Context struct {
	Clock   engine.TimeProvider
	Log     *logrus.Logger
	Effects *engine.Pool[*Effect]
	HUD     HUD
}

// NewContext creates a context with an effect pool and a discarding HUD
func NewContext(clock engine.TimeProvider, log *logrus.Logger) *Context {
	return &Context{
		Clock: clock,
		Log:   log,
		Effects: engine.NewPool(
			func() *Effect { return &Effect{} },
			func(fx *Effect) { *fx = Effect{} },
		),
		HUD: NopHUD{},
	}
}

// NopHUD discards all HUD output
type NopHUD struct{}

func (NopHUD) SetReticle(ReticleState) {}
func (NopHUD) Notify(string)           {}
