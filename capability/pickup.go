package capability

import (
	"fmt"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

// WeaponPickup is a world item that hands a weapon and ammo to whoever finishes interacting with it
type WeaponPickup struct {
	Weapon   *weapon.Definition
	Ammo     int
	Position vmath.Vec3
	Params   entity.InteractionParameters

	// OnConsumed is called once the pickup has been taken
	OnConsumed func(p *WeaponPickup, user *entity.Entity)

	consumed bool
}

// NewWeaponPickup creates a pickup at pos
func NewWeaponPickup(def *weapon.Definition, ammo int, pos vmath.Vec3, params entity.InteractionParameters) *WeaponPickup {
	return &WeaponPickup{Weapon: def, Ammo: ammo, Position: pos, Params: params}
}

// Consumed reports whether the pickup has been taken
func (p *WeaponPickup) Consumed() bool { return p.consumed }

func (p *WeaponPickup) ClosestPoint(vmath.Vec3) vmath.Vec3 { return p.Position }

func (p *WeaponPickup) Parameters() entity.InteractionParameters { return p.Params }

func (p *WeaponPickup) OnInteractionStarted(user *entity.Entity) {
	user.Context().HUD.Notify(fmt.Sprintf("picking up %s", p.Weapon.Name))
}

func (p *WeaponPickup) OnInteractionCanceled(user *entity.Entity) {
	user.Context().HUD.Notify("")
}

func (p *WeaponPickup) OnInteractionFinished(user *entity.Entity) {
	if p.consumed {
		return
	}
	if !user.Model().PickupWeapon.Try(weapon.AmmoTuple{Weapon: p.Weapon, Ammo: p.Ammo}) {
		user.Context().HUD.Notify(fmt.Sprintf("cannot carry %s", p.Weapon.Name))
		return
	}
	p.consumed = true
	user.Context().HUD.Notify(fmt.Sprintf("picked up %s", p.Weapon.Name))
	if p.OnConsumed != nil {
		p.OnConsumed(p, user)
	}
}
