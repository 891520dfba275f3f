package capability

import (
	"time"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
)

// Footsteps emits alternating footstep events from grounded planar travel
// Sneaking keeps the travel counter at zero so sneaking is silent
type Footsteps struct {
	m *entity.Model

	// Distance is the travel between steps; ProneDistance replaces it while prone
	Distance      float64
	ProneDistance float64

	sneaking  bool
	travelled float64
	next      entity.Foot
}

// NewFootsteps creates a footstep emitter
func NewFootsteps(distance, proneDistance float64) *Footsteps {
	return &Footsteps{Distance: distance, ProneDistance: proneDistance}
}

func (f *Footsteps) RegisterBindings(e *entity.Entity) error {
	f.m = e.Model()

	var b model.Binder
	b.Check(f.m.Sneak.SetActivityGetter(f.IsSneaking))
	f.m.Sneak.OnStart.Subscribe(func() { f.sneaking = true })
	f.m.Sneak.OnStop.Subscribe(func() { f.sneaking = false })
	return b.Err()
}

// IsSneaking reports the sneak state
func (f *Footsteps) IsSneaking() bool { return f.sneaking }

// NextFoot returns the foot of the next step
func (f *Footsteps) NextFoot() entity.Foot { return f.next }

func (f *Footsteps) Update(dt time.Duration) {
	if !f.m.Grounded.Get() || f.sneaking {
		f.travelled = 0
		return
	}
	f.travelled += vmath.V3Mag(vmath.V3Planar(f.m.MotorVelocity.Get())) * dt.Seconds()

	step := f.Distance
	if f.m.Prone.IsActive() && f.ProneDistance > 0 {
		step = f.ProneDistance
	}
	if step <= 0 {
		return
	}
	for f.travelled >= step {
		f.travelled -= step
		foot := f.next
		f.next = foot.Other()
		f.m.Footstep.Fire(foot)
	}
}
