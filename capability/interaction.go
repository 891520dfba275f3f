package capability

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
)

// InteractionHandler runs timed interactions with world objects within reach
// An interaction is canceled once its target moves out of reach
type InteractionHandler struct {
	e     *entity.Entity
	m     *entity.Model
	clock engine.TimeProvider
	log   *logrus.Entry

	// Distance is the maximum reach from the body position
	Distance float64

	current entity.Interactable
	started time.Time
	done    time.Time
}

// NewInteractionHandler creates a handler with the given reach
func NewInteractionHandler(distance float64) *InteractionHandler {
	return &InteractionHandler{Distance: distance}
}

func (h *InteractionHandler) RegisterBindings(e *entity.Entity) error {
	if e.Body() == nil {
		return ErrNoBody
	}
	h.e = e
	h.m = e.Model()
	h.clock = e.Clock()
	h.log = e.Log().WithField("component", "interaction")

	var b model.Binder
	b.Check(h.m.Interact.SetActivityGetter(h.IsInteracting))
	b.Check(h.m.Interact.SetStartCondition(h.InReach))
	h.m.Interact.OnStart.Subscribe(h.onStart)
	h.m.Interact.OnStop.Subscribe(h.onStop)
	b.Check(h.m.InteractionProgress.SetGetter(h.Progress))
	return b.Err()
}

// IsInteracting reports whether a timed interaction is running
func (h *InteractionHandler) IsInteracting() bool { return h.current != nil }

// InReach reports whether target is within Distance
func (h *InteractionHandler) InReach(target entity.Interactable) bool {
	if target == nil {
		return false
	}
	origin := h.e.Body().Position()
	return vmath.V3Dist(origin, target.ClosestPoint(origin)) <= h.Distance
}

// Progress returns completion of the running interaction in [0,1]
func (h *InteractionHandler) Progress() float64 {
	if h.current == nil {
		return 0
	}
	total := h.done.Sub(h.started)
	if total <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(h.clock.Now().Sub(h.started)) / float64(total))
}

func (h *InteractionHandler) Update(time.Duration) {
	if h.current == nil {
		return
	}
	if !h.InReach(h.current) {
		h.m.Interact.ForceStop()
		return
	}
	if !h.clock.Now().Before(h.done) {
		target := h.current
		h.current = nil
		target.OnInteractionFinished(h.e)
	}
}

func (h *InteractionHandler) onStart(target entity.Interactable) {
	if target == nil {
		return
	}
	duration := target.Parameters().Duration
	if duration <= 0 {
		target.OnInteractionStarted(h.e)
		target.OnInteractionFinished(h.e)
		return
	}
	h.current = target
	h.started = h.clock.Now()
	h.done = h.started.Add(duration)
	target.OnInteractionStarted(h.e)
	h.log.WithField("duration", duration).Debug("interaction started")
}

func (h *InteractionHandler) onStop() {
	if h.current == nil {
		return
	}
	target := h.current
	h.current = nil
	target.OnInteractionCanceled(h.e)
	h.log.Debug("interaction canceled")
}
