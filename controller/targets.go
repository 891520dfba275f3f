package controller

import (
	"slices"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/vmath"
)

// Targeter finds the interactable under the crosshair
type Targeter interface {
	Target(origin, dir vmath.Vec3, maxDist float64) entity.Interactable
}

// Targets is a Targeter over a fixed set of interactables
// A target is hit when its closest point lies within maxDist and inside the aim cone
type Targets struct {
	items []entity.Interactable

	// MinDot is the cosine of the aim cone half angle
	MinDot float64
}

// NewTargets creates an empty set with a roughly 25 degree aim cone
func NewTargets() *Targets {
	return &Targets{MinDot: 0.9}
}

// Add registers an interactable
func (t *Targets) Add(it entity.Interactable) { t.items = append(t.items, it) }

// Remove drops an interactable, reporting whether it was present
func (t *Targets) Remove(it entity.Interactable) bool {
	i := slices.Index(t.items, it)
	if i < 0 {
		return false
	}
	t.items = slices.Delete(t.items, i, i+1)
	return true
}

// Len returns the number of registered interactables
func (t *Targets) Len() int { return len(t.items) }

// Target returns the nearest interactable in the aim cone, nil if none
func (t *Targets) Target(origin, dir vmath.Vec3, maxDist float64) entity.Interactable {
	dir = vmath.V3Normalize(dir)
	var best entity.Interactable
	bestDist := maxDist
	for _, it := range t.items {
		to := vmath.V3Sub(it.ClosestPoint(origin), origin)
		d := vmath.V3Mag(to)
		if d > bestDist {
			continue
		}
		if d > 1e-6 && vmath.V3Dot(vmath.V3Scale(to, 1/d), dir) < t.MinDot {
			continue
		}
		best, bestDist = it, d
	}
	return best
}
