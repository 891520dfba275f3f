package controller

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/input"
	"github.com/lixenwraith/fps-model/model"
)

// DefaultInteractionRange is how far the crosshair reaches for interactables
const DefaultInteractionRange = 2.0

// FirstPersonController maps intents onto the first person model
// Add it before the capability components so their Update sees this tick's requests
type FirstPersonController struct {
	in      *input.State
	targets Targeter

	fp  *entity.FirstPersonModel
	hud entity.HUD
	log *logrus.Entry

	reticle entity.ReticleState
	target  entity.Interactable

	// Range limits interaction targeting
	Range float64
}

// NewFirstPersonController creates a controller; targets may be nil
func NewFirstPersonController(in *input.State, targets Targeter) *FirstPersonController {
	return &FirstPersonController{in: in, targets: targets, Range: DefaultInteractionRange}
}

func (c *FirstPersonController) RegisterBindings(e *entity.Entity) error {
	c.fp = e.FP()
	c.hud = e.Context().HUD
	c.log = e.Log().WithField("component", "controller")

	var b model.Binder
	b.Check(c.fp.MotorMovement.SetGetter(c.in.Movement))
	b.Check(c.fp.InputLook.SetGetter(c.in.Look))
	return b.Err()
}

// Target returns the interactable under the crosshair as of the last Update
func (c *FirstPersonController) Target() entity.Interactable { return c.target }

// Update issues this tick's requests
func (c *FirstPersonController) Update(time.Duration) {
	fp, in := c.fp, c.in

	holdActivity(fp.LeanLeft, in.IsHeld(input.IntentLeanLeft))
	holdActivity(fp.LeanRight, in.IsHeld(input.IntentLeanRight))
	holdActivity(fp.Run, in.IsHeld(input.IntentRun))

	if in.IsDown(input.IntentJump) {
		fp.Jump.TryStart()
	}

	if in.IsDown(input.IntentFire) {
		fp.Fire.TryStart()
	}
	if in.IsUp(input.IntentFire) {
		fp.Fire.TryStop()
	}

	if in.IsDown(input.IntentFireMode) {
		c.cycleFireMode()
	}

	toggleOnDown(in, input.IntentZoom, fp.Zoom)
	toggleOnDown(in, input.IntentCrouch, fp.Crouch)
	toggleOnDown(in, input.IntentProne, fp.Prone)
	toggleOnDown(in, input.IntentSneak, fp.Sneak)

	if in.IsDown(input.IntentHolster) {
		fp.HolsterWeapon.Fire()
	}
	if in.IsDown(input.IntentReload) {
		fp.Reload.TryStart()
	}
	for i := input.IntentWeapon1; i <= input.IntentWeapon4; i++ {
		if in.IsDown(i) {
			fp.SelectWeaponByIndex.Try(i.WeaponSlot())
		}
	}

	c.updateTarget()
}

// cycleFireMode advances to the mode after the current one, wrapping
func (c *FirstPersonController) cycleFireMode() {
	modes := c.fp.AvailableFireModes.Get()
	if len(modes) == 0 {
		return
	}
	next := modes[(slices.Index(modes, c.fp.FireMode.Get())+1)%len(modes)]
	if c.fp.SetFireMode.Try(next) {
		c.log.WithField("mode", next).Debug("fire mode changed")
	}
}

func (c *FirstPersonController) updateTarget() {
	reticle := entity.ReticleCrosshair
	if c.fp.CurrentWeapon.Get() == nil || c.fp.Zoom.IsActive() {
		reticle = entity.ReticleNone
	}

	c.target = nil
	if c.targets != nil {
		c.target = c.targets.Target(c.fp.LookOrigin.Get(), c.fp.LookDir.Get(), c.Range)
	}
	if c.target != nil {
		reticle = entity.ReticleInteraction
		if c.in.IsDown(input.IntentInteract) {
			c.fp.Interact.TryStart(c.target)
		}
	}

	if reticle != c.reticle {
		c.reticle = reticle
		c.hud.SetReticle(reticle)
	}
}

// holdActivity keeps an activity running for as long as its intent is held
func holdActivity(a *model.Activity, held bool) {
	switch {
	case held && !a.IsActive():
		a.TryStart()
	case !held && a.IsActive():
		a.TryStop()
	}
}

func toggleOnDown(in *input.State, i input.Intent, a *model.Activity) {
	if !in.IsDown(i) {
		return
	}
	if a.IsActive() {
		a.TryStop()
	} else {
		a.TryStart()
	}
}
