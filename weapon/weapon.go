package weapon

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
)

// Reserve is the owner-side ammo storage a weapon draws from on reload
// Typically the entity's GetWeaponAmmo function and SetWeaponAmmo event
type Reserve struct {
	Get *model.Function[*Definition, int]
	Set *model.Event2[*Definition, int]
}

// Weapon is one held instance of a Definition
//
// Fire and reload are exposed as activities whose state lives in this struct:
// firing stays active until the shooting cooldown deadline passes, reloading
// until the reload deadline passes. Both are released from Update, which the
// owner calls once per tick before acting on the weapon.
type Weapon struct {
	def     *Definition
	clock   engine.TimeProvider
	reserve Reserve
	rng     *rand.Rand

	fireMode   FireMode
	ammoInClip int

	firing    bool
	reloading bool
	fireDone  time.Time
	reloadEnd time.Time

	// WeaponFire is active for the shooting cooldown after every shot
	// OnFailStart doubles as the dry-fire notification
	WeaponFire *model.Activity

	// WeaponReload is active until the reload deadline
	WeaponReload *model.Activity

	// OnRecoil fires once per shot with the camera kick
	OnRecoil *model.Event1[vmath.Vec2]

	// OnFootstep drives first-person weapon sway
	OnFootstep *model.Event
}

// New creates a weapon with an empty clip in the definition's first fire mode
func New(def *Definition, clock engine.TimeProvider, reserve Reserve) *Weapon {
	w := &Weapon{
		def:          def,
		clock:        clock,
		reserve:      reserve,
		rng:          rand.New(rand.NewPCG(uint64(len(def.Name)), uint64(def.ClipSize))),
		WeaponFire:   model.NewActivity(def.Name + ".weaponFire"),
		WeaponReload: model.NewActivity(def.Name + ".weaponReload"),
		OnRecoil:     model.NewEvent1[vmath.Vec2](def.Name + ".onRecoil"),
		OnFootstep:   model.NewEvent(def.Name + ".onFootstep"),
	}
	if len(def.FireModes) > 0 {
		w.fireMode = def.FireModes[0]
	}

	// Fresh activities cannot be bound already
	_ = w.WeaponFire.SetActivityGetter(w.IsFiring)
	_ = w.WeaponFire.SetStartCondition(w.CanFire)
	_ = w.WeaponReload.SetActivityGetter(w.IsReloading)
	_ = w.WeaponReload.SetStartCondition(w.CanReload)

	w.WeaponFire.OnStart.Subscribe(w.onFire)
	w.WeaponFire.OnStop.Subscribe(func() { w.firing = false })
	w.WeaponReload.OnStart.Subscribe(w.onReload)
	w.WeaponReload.OnStop.Subscribe(func() { w.reloading = false })

	return w
}

// Definition returns the shared definition
func (w *Weapon) Definition() *Definition { return w.def }

// AmmoInClip returns the rounds currently loaded
func (w *Weapon) AmmoInClip() int { return w.ammoInClip }

// SetAmmoInClip loads n rounds directly, clamped to [0, ClipSize]
func (w *Weapon) SetAmmoInClip(n int) {
	w.ammoInClip = max(0, min(n, w.def.ClipSize))
}

// Ammo returns the reserve held by the owner; 0 when the owner has no inventory
func (w *Weapon) Ammo() int {
	if w.reserve.Get == nil {
		return 0
	}
	n, err := w.reserve.Get.Invoke(w.def)
	if err != nil {
		return 0
	}
	return n
}

func (w *Weapon) setAmmo(n int) {
	if w.reserve.Set != nil {
		w.reserve.Set.Fire(w.def, n)
	}
}

// FireMode returns the selected fire mode
func (w *Weapon) FireMode() FireMode { return w.fireMode }

// CanSetFireMode reports whether the definition supports m
func (w *Weapon) CanSetFireMode(m FireMode) bool { return w.def.Supports(m) }

// SetFireMode selects m if supported
func (w *Weapon) SetFireMode(m FireMode) bool {
	if !w.def.Supports(m) {
		return false
	}
	w.fireMode = m
	return true
}

// IsFiring reports whether the shooting cooldown is running
func (w *Weapon) IsFiring() bool { return w.firing }

// IsReloading reports whether a reload is in progress
func (w *Weapon) IsReloading() bool { return w.reloading }

// IsBusy reports firing or reloading; both activities are mutually exclusive through it
func (w *Weapon) IsBusy() bool { return w.firing || w.reloading }

// CanFire reports whether a shot would leave the barrel now
func (w *Weapon) CanFire() bool {
	return w.ammoInClip > 0 && !w.IsBusy()
}

// CanReload reports whether a reload would start now
func (w *Weapon) CanReload() bool {
	return w.Ammo() > 0 && w.ammoInClip < w.def.ClipSize && !w.IsBusy()
}

// Fire tries to shoot one round; a rejected shot fires WeaponFire.OnFailStart
func (w *Weapon) Fire() bool {
	return w.WeaponFire.TryStart()
}

// Reload tries to start a reload
func (w *Weapon) Reload() bool {
	return w.WeaponReload.TryStart()
}

// Update releases the fire and reload activities whose deadlines have passed
func (w *Weapon) Update() {
	now := w.clock.Now()

	if w.firing && !now.Before(w.fireDone) {
		w.WeaponFire.ForceStop()
	}

	if w.reloading && !now.Before(w.reloadEnd) {
		// Clip contents return to the reserve, then the clip is refilled from it
		total := w.Ammo() + w.ammoInClip
		w.ammoInClip = min(w.def.ClipSize, total)
		w.setAmmo(total - w.ammoInClip)
		w.WeaponReload.ForceStop()
	}
}

// FireCooldownRemaining returns the time until the next shot is allowed
func (w *Weapon) FireCooldownRemaining() time.Duration {
	if !w.firing {
		return 0
	}
	return max(0, w.fireDone.Sub(w.clock.Now()))
}

// ReloadProgress returns the reload completion in [0,1], 0 when idle
func (w *Weapon) ReloadProgress() float64 {
	if !w.reloading || w.def.ReloadCooldown <= 0 {
		return 0
	}
	left := w.reloadEnd.Sub(w.clock.Now())
	return vmath.Clamp01(1 - float64(left)/float64(w.def.ReloadCooldown))
}

// onFire runs the cooldown even for a forced shot on an empty clip, which spends nothing
func (w *Weapon) onFire() {
	w.firing = true
	w.fireDone = w.clock.Now().Add(w.def.ShootingCooldown())
	if w.ammoInClip <= 0 {
		return
	}
	w.ammoInClip--
	if w.def.Recoil > 0 {
		w.OnRecoil.Fire(w.recoilSample())
	}
}

func (w *Weapon) onReload() {
	w.reloading = true
	w.reloadEnd = w.clock.Now().Add(w.def.ReloadCooldown)
}

// recoilSample picks a kick inside the recoil pattern box, scaled by Recoil
func (w *Weapon) recoilSample() vmath.Vec2 {
	lo, hi := w.def.RecoilPatternMin, w.def.RecoilPatternMax
	k := vmath.Vec2{
		X: lo.X + (hi.X-lo.X)*w.rng.Float64(),
		Y: lo.Y + (hi.Y-lo.Y)*w.rng.Float64(),
	}
	return vmath.V2Scale(k, w.def.Recoil)
}
