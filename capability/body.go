package capability

import (
	"math"
	"time"

	"github.com/lixenwraith/fps-model/vmath"
)

const defaultGravity = 9.81

// KinematicBody is a planar body with vertical ballistic motion over a flat floor at Y=0
// It implements entity.Body and is advanced by the world as a ticker
type KinematicBody struct {
	pos vmath.Vec3
	vel vmath.Vec3

	Gravity float64
}

// NewKinematicBody creates a body resting at pos
func NewKinematicBody(pos vmath.Vec3) *KinematicBody {
	return &KinematicBody{pos: pos, Gravity: defaultGravity}
}

func (b *KinematicBody) Position() vmath.Vec3 { return b.pos }
func (b *KinematicBody) Velocity() vmath.Vec3 { return b.vel }

// SetPosition teleports the body
func (b *KinematicBody) SetPosition(p vmath.Vec3) { b.pos = p }

// Grounded reports contact with the floor
func (b *KinematicBody) Grounded() bool {
	return b.pos.Y <= 0 && b.vel.Y <= 0
}

// Move sets the planar velocity, keeping the vertical component
func (b *KinematicBody) Move(v vmath.Vec3) {
	b.vel.X, b.vel.Z = v.X, v.Z
}

// Jump sets the launch speed reaching height; ignored while airborne
func (b *KinematicBody) Jump(height float64) {
	if !b.Grounded() || height <= 0 {
		return
	}
	b.vel.Y = math.Sqrt(2 * b.Gravity * height)
}

// Tick integrates one step
func (b *KinematicBody) Tick(dt time.Duration) {
	s := dt.Seconds()
	if !b.Grounded() {
		b.vel.Y -= b.Gravity * s
	}
	b.pos = vmath.V3Add(b.pos, vmath.V3Scale(b.vel, s))
	if b.pos.Y < 0 {
		b.pos.Y = 0
		b.vel.Y = 0
	}
}
