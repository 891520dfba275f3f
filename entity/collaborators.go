package entity

//go:generate go tool mockgen -destination=../capability/mocks/entity_mock.go -package=mocks . Body,Interactable

import (
	"time"

	"github.com/lixenwraith/fps-model/vmath"
)

// Body is the physics collaborator an entity moves through
type Body interface {
	Position() vmath.Vec3
	Velocity() vmath.Vec3
	Grounded() bool

	// Move requests planar velocity for the coming tick
	Move(velocity vmath.Vec3)

	// Jump launches the body to reach height above its current position
	Jump(height float64)
}

// InteractionParameters describe how long an interaction takes
type InteractionParameters struct {
	Duration time.Duration // zero means instant
}

// Interactable is a world object an entity can interact with
type Interactable interface {
	// ClosestPoint returns the point on the object nearest to from
	ClosestPoint(from vmath.Vec3) vmath.Vec3
	Parameters() InteractionParameters

	OnInteractionStarted(user *Entity)
	// OnInteractionCanceled is called when a started interaction is interrupted
	OnInteractionCanceled(user *Entity)
	OnInteractionFinished(user *Entity)
}
