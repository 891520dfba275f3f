package capability

import (
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/weapon"
)

// Inventory stores ammo per weapon kind for up to MaxWeapons kinds
type Inventory struct {
	m *entity.Model

	MaxWeapons int

	ammo  map[*weapon.Definition]int
	order []*weapon.Definition
}

// NewInventory creates an empty inventory
func NewInventory(maxWeapons int) *Inventory {
	return &Inventory{
		MaxWeapons: maxWeapons,
		ammo:       make(map[*weapon.Definition]int),
	}
}

func (inv *Inventory) RegisterBindings(e *entity.Entity) error {
	inv.m = e.Model()
	m := inv.m

	var b model.Binder
	b.Check(m.GetWeaponAmmo.Bind(inv.Ammo))
	m.SetWeaponAmmo.Subscribe(inv.setAmmo)
	b.Check(m.AvailableWeapons.SetGetter(inv.Weapons))

	b.Check(m.PickupWeapon.SetCondition(inv.canPickup))
	m.PickupWeapon.OnFire.Subscribe(inv.pickup)

	b.Check(m.DropWeapon.SetCondition(inv.Has))
	m.DropWeapon.OnFire.Subscribe(inv.drop)
	return b.Err()
}

// Ammo returns the reserve held for def
func (inv *Inventory) Ammo(def *weapon.Definition) int { return inv.ammo[def] }

// Has reports whether def is stored
func (inv *Inventory) Has(def *weapon.Definition) bool {
	_, ok := inv.ammo[def]
	return ok
}

// Weapons returns stored kinds in pickup order
func (inv *Inventory) Weapons() []*weapon.Definition { return inv.order }

func (inv *Inventory) setAmmo(def *weapon.Definition, n int) {
	if inv.Has(def) {
		inv.ammo[def] = n
	}
}

func (inv *Inventory) canPickup(t weapon.AmmoTuple) bool {
	if t.Weapon == nil || len(inv.order) >= inv.MaxWeapons {
		return false
	}
	return !inv.Has(t.Weapon)
}

func (inv *Inventory) pickup(t weapon.AmmoTuple) {
	inv.ammo[t.Weapon] = t.Ammo
	inv.order = append(inv.order, t.Weapon)
	inv.m.OnPickedUpWeapon.Fire(t.Weapon)
}

func (inv *Inventory) drop(def *weapon.Definition) {
	if !inv.Has(def) {
		return
	}
	delete(inv.ammo, def)
	for i, d := range inv.order {
		if d == def {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	inv.m.OnDroppedWeapon.Fire(def)
}
