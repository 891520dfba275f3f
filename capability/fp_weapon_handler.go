package capability

import (
	"time"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/weapon"
)

// zoomSource tags the movement slowdown applied while zoomed
const zoomSource = "zoom"

// FirstPersonWeaponHandler adds zoom, weapon sway forwarding and camera recoil to WeaponHandler
type FirstPersonWeaponHandler struct {
	*WeaponHandler

	fp     *entity.FirstPersonModel
	zoomed bool

	// ZoomMovementFactor scales movement speed while zoomed; 0 or 1 disables
	ZoomMovementFactor float64
}

// NewFirstPersonWeaponHandler creates a first person handler
func NewFirstPersonWeaponHandler() *FirstPersonWeaponHandler {
	return &FirstPersonWeaponHandler{
		WeaponHandler:      NewWeaponHandler(),
		ZoomMovementFactor: 0.6,
	}
}

func (h *FirstPersonWeaponHandler) RegisterBindings(e *entity.Entity) error {
	var b model.Binder
	b.Check(h.WeaponHandler.RegisterBindings(e))

	h.fp = e.FP()
	fp := h.fp

	// Zooming
	b.Check(fp.Zoom.SetStartCondition(func() bool { return h.current != nil && !h.zoomed }))
	b.Check(fp.Zoom.SetActivityGetter(h.IsZoomed))
	fp.Zoom.OnStart.Subscribe(h.onZoomStart)
	fp.Zoom.OnStop.Subscribe(h.onZoomEnd)

	// Weapon sway
	fp.Footstep.Subscribe(func(entity.Foot) {
		if h.current != nil {
			h.current.OnFootstep.Fire()
		}
	})

	// Camera kick from every weapon this handler creates
	h.OnWeaponCreated.Subscribe(func(w *weapon.Weapon) {
		w.OnRecoil.Subscribe(fp.CameraRecoil.Fire)
	})

	return b.Err()
}

// IsZoomed reports the zoom state
func (h *FirstPersonWeaponHandler) IsZoomed() bool { return h.zoomed }

// Update forces zoom off once no weapon is held
func (h *FirstPersonWeaponHandler) Update(dt time.Duration) {
	h.WeaponHandler.Update(dt)
	if h.current == nil && h.zoomed {
		h.fp.Zoom.ForceStop()
	}
}

func (h *FirstPersonWeaponHandler) onZoomStart() {
	h.zoomed = true
	if f := h.ZoomMovementFactor; f > 0 && f != 1 {
		h.m.MovementSpeed.AddModifier(zoomSource, model.Multiply[float64](f))
	}
}

func (h *FirstPersonWeaponHandler) onZoomEnd() {
	h.zoomed = false
	h.m.MovementSpeed.RemoveSource(zoomSource)
}
