package capability

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
)

// Stance is the body posture; exactly one is held at a time
type Stance uint8

const (
	StanceStand Stance = iota
	StanceCrouch
	StanceProne
)

func (s Stance) String() string {
	switch s {
	case StanceCrouch:
		return "crouch"
	case StanceProne:
		return "prone"
	default:
		return "stand"
	}
}

// Lean is the sideways lean direction
type Lean uint8

const (
	LeanNone Lean = iota
	LeanLeft
	LeanRight
)

// MotorConfig tunes leaning and knockback
type MotorConfig struct {
	LeanLerpFactor float64 // per second
	LeanAngle      float64 // degrees at full lean
	ForceDamping   float64 // per second decay of external pushes
}

// DefaultMotorConfig returns the standard tuning
func DefaultMotorConfig() MotorConfig {
	return MotorConfig{LeanLerpFactor: 5, LeanAngle: 10, ForceDamping: 4}
}

// Motor moves the entity body and owns stance, lean, run and jump state
type Motor struct {
	cfg  MotorConfig
	m    *entity.Model
	body entity.Body
	log  *logrus.Entry

	wantsToJump bool
	running     bool
	stance      Stance
	lean        Lean
	leanAngle   float64
	push        vmath.Vec3
}

// NewMotor creates a motor
func NewMotor(cfg MotorConfig) *Motor {
	return &Motor{cfg: cfg}
}

func (mo *Motor) RegisterBindings(e *entity.Entity) error {
	if e.Body() == nil {
		return ErrNoBody
	}
	mo.m = e.Model()
	mo.body = e.Body()
	mo.log = e.Log().WithField("component", "motor")
	m := mo.m

	var b model.Binder

	// Jumping
	b.Check(m.Jump.SetStartCondition(mo.canJump))
	b.Check(m.Jump.SetActivityGetter(mo.isJumping))
	m.Jump.OnStart.Subscribe(func() { mo.wantsToJump = true })

	// Running
	b.Check(m.Run.SetActivityGetter(func() bool { return mo.running }))
	b.Check(m.Run.SetStartCondition(mo.canRun))
	m.Run.OnStart.Subscribe(func() { mo.running = true })
	m.Run.OnStop.Subscribe(func() { mo.running = false })

	// Leaning; left and right share the gate so only one can hold
	b.Check(m.LeanLeft.SetActivityGetter(func() bool { return mo.lean == LeanLeft }))
	b.Check(m.LeanRight.SetActivityGetter(func() bool { return mo.lean == LeanRight }))
	b.Check(m.LeanLeft.SetStartCondition(mo.canLean))
	b.Check(m.LeanRight.SetStartCondition(mo.canLean))
	m.LeanLeft.OnStart.Subscribe(func() { mo.lean = LeanLeft })
	m.LeanRight.OnStart.Subscribe(func() { mo.lean = LeanRight })
	m.LeanLeft.OnStop.Subscribe(mo.stopLean)
	m.LeanRight.OnStop.Subscribe(mo.stopLean)

	// Stances; crouch and prone only start from standing
	b.Check(m.Crouch.SetActivityGetter(func() bool { return mo.stance == StanceCrouch }))
	b.Check(m.Crouch.SetStartCondition(mo.canChangeStance))
	m.Crouch.OnStart.Subscribe(func() { mo.setStance(StanceCrouch) })
	m.Crouch.OnStop.Subscribe(func() { mo.setStance(StanceStand) })

	b.Check(m.Prone.SetActivityGetter(func() bool { return mo.stance == StanceProne }))
	b.Check(m.Prone.SetStartCondition(mo.canChangeStance))
	m.Prone.OnStart.Subscribe(func() { mo.setStance(StanceProne) })
	m.Prone.OnStop.Subscribe(func() { mo.setStance(StanceStand) })

	// External forces arrive as planar velocity changes
	m.ExternalForce.Subscribe(func(f vmath.Vec3) { mo.push = vmath.V3Add(mo.push, vmath.V3Planar(f)) })

	b.Check(m.Grounded.SetGetter(mo.body.Grounded))
	b.Check(m.MotorVelocity.SetGetter(mo.body.Velocity))

	return b.Err()
}

// Push returns the external velocity still applied on top of movement
func (mo *Motor) Push() vmath.Vec3 { return mo.push }

// Stance returns the current posture
func (mo *Motor) Stance() Stance { return mo.stance }

// Lean returns the current lean direction
func (mo *Motor) Lean() Lean { return mo.lean }

// LeanAngle returns the interpolated hip roll in degrees, positive to the left
func (mo *Motor) LeanAngle() float64 { return mo.leanAngle }

// Speed returns the effective planar speed for the current stance and activities
func (mo *Motor) Speed() float64 {
	m := mo.m
	var speed float64
	switch mo.stance {
	case StanceCrouch:
		speed = m.MovementSpeedCrouch.Get()
	case StanceProne:
		speed = m.MovementSpeedProne.Get()
	default:
		if mo.running {
			speed = m.MovementSpeedRun.Get()
		} else {
			speed = m.MovementSpeed.Get()
		}
	}
	if m.Sneak.IsActive() {
		speed *= m.SneakSpeedFactor.Get()
	}
	return speed
}

func (mo *Motor) Update(dt time.Duration) {
	mo.updateLean(dt)

	grounded := mo.body.Grounded()
	if mo.wantsToJump {
		if grounded {
			mo.body.Jump(mo.m.JumpHeight.Get())
		}
		mo.wantsToJump = false
	}

	input := mo.m.MotorMovement.Get()
	if mag := vmath.V2Mag(input); mag > 1 {
		input = vmath.V2Scale(input, 1/mag)
	}
	if mo.running && vmath.V2Mag(input) <= runThreshold {
		mo.m.Run.ForceStop()
	}

	speed := mo.Speed()
	if !grounded {
		speed *= mo.m.InAirControl.Get()
	}

	fwd := vmath.V3Normalize(vmath.V3Planar(mo.m.LookDir.Get()))
	right := vmath.Vec3{X: fwd.Z, Z: -fwd.X}
	dir := vmath.V3Add(vmath.V3Scale(fwd, input.Y), vmath.V3Scale(right, input.X))
	mo.body.Move(vmath.V3Add(vmath.V3Scale(dir, speed), mo.push))
	mo.push = vmath.V3Scale(mo.push, max(0, 1-mo.cfg.ForceDamping*dt.Seconds()))
}

const runThreshold = 0.01

func (mo *Motor) canJump() bool   { return mo.body.Grounded() && !mo.wantsToJump }
func (mo *Motor) isJumping() bool { return !mo.body.Grounded() || mo.wantsToJump }

func (mo *Motor) canRun() bool {
	return !mo.running && vmath.V2Mag(mo.m.MotorMovement.Get()) > runThreshold
}

func (mo *Motor) canLean() bool         { return mo.lean == LeanNone }
func (mo *Motor) stopLean()             { mo.lean = LeanNone }
func (mo *Motor) canChangeStance() bool { return mo.stance == StanceStand }

func (mo *Motor) setStance(s Stance) {
	mo.log.WithFields(logrus.Fields{"from": mo.stance, "to": s}).Debug("stance")
	mo.stance = s
}

func (mo *Motor) updateLean(dt time.Duration) {
	var target float64
	switch mo.lean {
	case LeanLeft:
		target = mo.cfg.LeanAngle
	case LeanRight:
		target = -mo.cfg.LeanAngle
	}
	mo.leanAngle = vmath.Lerp(mo.leanAngle, target, mo.cfg.LeanLerpFactor*dt.Seconds())
}
