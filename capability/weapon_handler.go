package capability

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

// mobilitySource tags the movement modifiers applied by the held weapon
const mobilitySource = "weapon.mobility"

// EyeHeight is the projectile origin offset above the body position
const EyeHeight = 1.6

// WeaponFactory creates the held instance for a picked up definition
type WeaponFactory func(def *weapon.Definition) *weapon.Weapon

// WeaponHandler owns the held weapons and drives fire, reload, selection and fire mode
//
// Semi-auto fire shoots once when the fire activity starts. Full-auto sets a trigger
// flag that LateUpdate turns into a shot whenever the weapon leaves its cooldown,
// after Update has released it, so no tick of cooldown is lost.
type WeaponHandler struct {
	e   *entity.Entity
	m   *entity.Model
	log *logrus.Entry

	// Factory defaults to weapon.New with the entity clock and inventory reserve
	Factory WeaponFactory

	weapons []*weapon.Weapon
	current *weapon.Weapon
	trigger bool

	// OnWeaponCreated fires for every instance created on pickup
	OnWeaponCreated *model.Event1[*weapon.Weapon]
}

// NewWeaponHandler creates a handler with no weapons
func NewWeaponHandler() *WeaponHandler {
	return &WeaponHandler{
		OnWeaponCreated: model.NewEvent1[*weapon.Weapon]("onWeaponCreated"),
	}
}

func (h *WeaponHandler) RegisterBindings(e *entity.Entity) error {
	h.e = e
	h.m = e.Model()
	h.log = e.Log().WithField("component", "weapon_handler")
	if h.Factory == nil {
		h.Factory = func(def *weapon.Definition) *weapon.Weapon {
			return weapon.New(def, e.Clock(), h.m.Reserve())
		}
	}
	m := h.m

	var b model.Binder

	// Values and simple events
	b.Check(m.SelectWeapon.SetCondition(h.canSelectWeapon))
	m.SelectWeapon.OnFire.Subscribe(h.selectWeapon)
	b.Check(m.SelectWeaponByIndex.SetCondition(h.canSelectIndex))
	m.SelectWeaponByIndex.OnFire.Subscribe(h.selectIndex)
	m.SelectWeaponByIndex.OnFail.Subscribe(func(i int) {
		h.log.WithFields(logrus.Fields{"index": i, "held": len(h.weapons)}).Debug("weapon select rejected")
	})
	b.Check(m.CurrentWeaponDefinition.SetGetter(h.currentDefinition))
	b.Check(m.CurrentWeapon.SetGetter(h.Current))
	b.Check(m.FireMode.SetGetter(h.fireMode))
	b.Check(m.AvailableFireModes.SetGetter(h.fireModes))
	b.Check(m.SetFireMode.SetCondition(h.canSetFireMode))
	m.SetFireMode.OnFire.Subscribe(func(fm weapon.FireMode) { h.current.SetFireMode(fm) })
	b.Check(m.ProjectileOrigin.SetGetter(h.projectileOrigin))
	b.Check(m.ProjectileOriginDir.SetGetter(m.LookDir.Get))
	m.HolsterWeapon.Subscribe(h.holster)
	m.OnPickedUpWeapon.Subscribe(h.onPickup)
	m.OnDroppedWeapon.Subscribe(h.onDrop)

	// Fire
	b.Check(m.Fire.SetStartCondition(h.canFire))
	b.Check(m.Fire.SetActivityGetter(h.isFiring))
	m.Fire.OnStart.Subscribe(h.onFire)
	m.Fire.OnStop.Subscribe(func() { h.trigger = false })

	// Reload
	b.Check(m.Reload.SetStartCondition(h.canReload))
	b.Check(m.Reload.SetActivityGetter(h.isReloading))
	m.Reload.OnStart.Subscribe(func() {
		if h.current != nil {
			h.current.Reload()
		}
	})

	return b.Err()
}

// Weapons returns the held instances in pickup order
func (h *WeaponHandler) Weapons() []*weapon.Weapon { return h.weapons }

// Current returns the equipped weapon, nil when holstered
func (h *WeaponHandler) Current() *weapon.Weapon { return h.current }

// Update releases weapon cooldowns whose deadlines passed
func (h *WeaponHandler) Update(time.Duration) {
	for _, w := range h.weapons {
		w.Update()
	}
}

// LateUpdate re-fires a held full-auto trigger
func (h *WeaponHandler) LateUpdate(time.Duration) {
	if !h.trigger || h.current == nil {
		return
	}
	if !h.current.IsBusy() {
		h.current.Fire()
	}
	if h.current.AmmoInClip() <= 0 {
		h.trigger = false
	}
}

func (h *WeaponHandler) instance(def *weapon.Definition) *weapon.Weapon {
	i := slices.IndexFunc(h.weapons, func(w *weapon.Weapon) bool { return w.Definition() == def })
	if i < 0 {
		return nil
	}
	return h.weapons[i]
}

func (h *WeaponHandler) currentDefinition() *weapon.Definition {
	if h.current == nil {
		return nil
	}
	return h.current.Definition()
}

func (h *WeaponHandler) projectileOrigin() vmath.Vec3 {
	body := h.e.Body()
	if body == nil {
		return h.m.LookOrigin.Get()
	}
	p := body.Position()
	p.Y += EyeHeight
	return p
}

// Pickup / selection

func (h *WeaponHandler) onPickup(def *weapon.Definition) {
	if h.instance(def) != nil {
		return
	}
	w := h.Factory(def)
	if w == nil {
		return
	}
	h.weapons = append(h.weapons, w)
	h.log.WithField("weapon", def.Name).Info("weapon picked up")
	h.OnWeaponCreated.Fire(w)
}

func (h *WeaponHandler) onDrop(def *weapon.Definition) {
	w := h.instance(def)
	if w == nil {
		return
	}
	if w == h.current {
		h.holster()
	}
	h.weapons = slices.DeleteFunc(h.weapons, func(x *weapon.Weapon) bool { return x == w })
	h.log.WithField("weapon", def.Name).Info("weapon dropped")
}

func (h *WeaponHandler) holster() {
	h.current = nil
	h.trigger = false
	h.movementModifiers(nil)
}

func (h *WeaponHandler) canSelectIndex(i int) bool {
	return i >= 0 && i < len(h.weapons) && h.weapons[i] != nil
}

func (h *WeaponHandler) selectIndex(i int) {
	if h.current == h.weapons[i] {
		return
	}
	h.holster()
	h.current = h.weapons[i]
	h.movementModifiers(h.current.Definition())
}

func (h *WeaponHandler) canSelectWeapon(def *weapon.Definition) bool {
	return h.instance(def) != nil
}

func (h *WeaponHandler) selectWeapon(def *weapon.Definition) {
	w := h.instance(def)
	if w == nil {
		h.log.WithField("weapon", def.Name).Error("selected weapon not held")
		return
	}
	h.selectIndex(slices.Index(h.weapons, w))
}

// movementModifiers replaces the held-weapon mobility scaling on every movement speed
func (h *WeaponHandler) movementModifiers(def *weapon.Definition) {
	speeds := []*model.ModifiableValue[float64]{
		h.m.MovementSpeed, h.m.MovementSpeedRun, h.m.MovementSpeedCrouch, h.m.MovementSpeedProne,
	}
	for _, s := range speeds {
		s.RemoveSource(mobilitySource)
		if def != nil && def.Mobility > 0 {
			s.AddModifier(mobilitySource, model.Multiply[float64](def.Mobility))
		}
	}
}

// Fire mode

func (h *WeaponHandler) fireModes() []weapon.FireMode {
	if h.current == nil {
		return nil
	}
	return h.current.Definition().FireModes
}

func (h *WeaponHandler) fireMode() weapon.FireMode {
	if h.current == nil {
		return weapon.FireModeNull
	}
	return h.current.FireMode()
}

func (h *WeaponHandler) canSetFireMode(fm weapon.FireMode) bool {
	return h.current != nil && h.current.CanSetFireMode(fm)
}

// Firing

func (h *WeaponHandler) isFiring() bool {
	return h.trigger || h.current != nil && h.current.IsFiring()
}

// canFire admits an empty clip so the weapon can report a dry fire
func (h *WeaponHandler) canFire() bool {
	return h.current != nil && !h.current.IsBusy()
}

func (h *WeaponHandler) onFire() {
	if h.current == nil {
		return
	}
	switch h.current.FireMode() {
	case weapon.SemiAuto:
		h.current.Fire()
	case weapon.FullAuto:
		h.trigger = true
	}
}

// Reload

func (h *WeaponHandler) isReloading() bool {
	return h.current != nil && h.current.IsReloading()
}

func (h *WeaponHandler) canReload() bool {
	return h.current != nil && h.current.CanReload()
}
