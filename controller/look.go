package controller

import (
	"math"
	"time"

	"github.com/lixenwraith/fps-model/capability"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
)

// LookConfig tunes the camera
type LookConfig struct {
	Sensitivity   float64 // degrees per second at full input
	MinPitch      float64 // degrees
	MaxPitch      float64
	FOV           float64
	ZoomFOV       float64
	FOVLerpFactor float64 // per second
	FootstepBob   float64 // degrees of pitch dip per step
	BobRecovery   float64 // per second
}

// DefaultLookConfig returns the standard camera tuning
func DefaultLookConfig() LookConfig {
	return LookConfig{
		Sensitivity:   120,
		MinPitch:      -45,
		MaxPitch:      45,
		FOV:           75,
		ZoomFOV:       45,
		FOVLerpFactor: 25,
		FootstepBob:   0.4,
		BobRecovery:   10,
	}
}

// FirstPersonLook owns yaw and pitch and publishes them as the look direction
// Positive pitch looks up, yaw 0 faces +Z and grows toward +X
type FirstPersonLook struct {
	cfg  LookConfig
	fp   *entity.FirstPersonModel
	body entity.Body

	yaw, pitch float64
	bob        float64
	fov        float64
}

// NewFirstPersonLook creates a look component facing +Z
func NewFirstPersonLook(cfg LookConfig) *FirstPersonLook {
	return &FirstPersonLook{cfg: cfg, fov: cfg.FOV}
}

func (l *FirstPersonLook) RegisterBindings(e *entity.Entity) error {
	l.fp = e.FP()
	l.body = e.Body()

	var b model.Binder
	b.Check(l.fp.LookDir.SetGetter(l.LookDir))
	b.Check(l.fp.LookOrigin.SetGetter(l.LookOrigin))

	// Recoil kicks the camera; X is horizontal, Y vertical
	l.fp.CameraRecoil.Subscribe(func(r vmath.Vec2) {
		l.yaw += r.X
		l.pitch = clampPitch(l.pitch+r.Y, l.cfg)
	})
	l.fp.Footstep.Subscribe(func(entity.Foot) { l.bob = l.cfg.FootstepBob })

	return b.Err()
}

// Update applies InputLook, settles the footstep bob and eases the field of view
func (l *FirstPersonLook) Update(dt time.Duration) {
	s := dt.Seconds()
	in := l.fp.InputLook.Get()

	l.yaw = math.Mod(l.yaw+in.X*l.cfg.Sensitivity*s, 360)
	l.pitch = clampPitch(l.pitch+in.Y*l.cfg.Sensitivity*s, l.cfg)
	l.bob = vmath.Lerp(l.bob, 0, vmath.Clamp01(l.cfg.BobRecovery*s))

	target := l.cfg.FOV
	if l.fp.Zoom.IsActive() {
		target = l.cfg.ZoomFOV
	}
	l.fov = vmath.Lerp(l.fov, target, vmath.Clamp01(l.cfg.FOVLerpFactor*s))
}

// Yaw returns the heading in degrees
func (l *FirstPersonLook) Yaw() float64 { return l.yaw }

// Pitch returns the elevation in degrees, excluding footstep bob
func (l *FirstPersonLook) Pitch() float64 { return l.pitch }

// FOV returns the current field of view in degrees
func (l *FirstPersonLook) FOV() float64 { return l.fov }

// LookDir returns the unit view direction
func (l *FirstPersonLook) LookDir() vmath.Vec3 {
	yaw := l.yaw * math.Pi / 180
	pitch := (l.pitch - l.bob) * math.Pi / 180
	return vmath.Vec3{
		X: math.Sin(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * math.Cos(pitch),
	}
}

// LookOrigin returns the eye position, the world origin without a body
func (l *FirstPersonLook) LookOrigin() vmath.Vec3 {
	if l.body == nil {
		return vmath.Vec3{Y: capability.EyeHeight}
	}
	p := l.body.Position()
	p.Y += capability.EyeHeight
	return p
}

func clampPitch(p float64, cfg LookConfig) float64 {
	return math.Max(cfg.MinPitch, math.Min(cfg.MaxPitch, p))
}
