package entity

import (
	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/model"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

// Foot identifies which foot a footstep belongs to
type Foot uint8

const (
	FootLeft Foot = iota
	FootRight
)

// Other returns the opposite foot
func (f Foot) Other() Foot { return 1 - f }

func (f Foot) String() string {
	if f == FootLeft {
		return "left"
	}
	return "right"
}

// DamageEvent describes one hit
type DamageEvent struct {
	Damage        float64
	HitPoint      vmath.Vec3
	HitNormal     vmath.Vec3 // points from the hit point toward the hit origin
	PhysicalForce float64

	// ByMechanics marks damage applied by game rules (falls, zones) rather than shots
	ByMechanics bool
}

// Model is the declarative interface of one entity kind
//
// Every field is created by NewModel and lives as long as the entity. Capability
// components bind getters, conditions and handlers into the fields during
// Entity.Start; controllers drive them with Try, Force and Fire.
type Model struct {
	// Movement
	MovementSpeed       *model.ModifiableValue[float64]
	MovementSpeedCrouch *model.ModifiableValue[float64]
	MovementSpeedRun    *model.ModifiableValue[float64]
	MovementSpeedProne  *model.ModifiableValue[float64]
	SneakSpeedFactor    *model.ModifiableValue[float64]
	JumpHeight          *model.ModifiableValue[float64]
	InAirControl        *model.ModifiableValue[float64]

	// Health
	MaxHealth   *model.ModifiableValue[float64]
	DamageTaken *model.ModifiableValue[float64]

	// General
	LookDir             *model.Value[vmath.Vec3]
	LookOrigin          *model.Value[vmath.Vec3]
	ProjectileOrigin    *model.Value[vmath.Vec3]
	ProjectileOriginDir *model.Value[vmath.Vec3]
	Grounded            *model.Value[bool]
	FireMode            *model.Value[weapon.FireMode]
	AvailableFireModes  *model.Collection[weapon.FireMode]
	InteractionProgress *model.Value[float64]

	// Motor
	MotorMovement *model.Value[vmath.Vec2]
	MotorVelocity *model.Value[vmath.Vec3]
	Footstep      *model.Event1[Foot]
	ExternalForce *model.Event1[vmath.Vec3]

	// Damage
	Health        *model.Value[float64]
	OnDamageTaken *model.Event1[DamageEvent]

	// Weapons
	CurrentWeaponDefinition *model.Value[*weapon.Definition]
	CurrentWeapon           *model.Value[*weapon.Weapon]
	SelectWeapon            *model.Attempt1[*weapon.Definition]
	SelectWeaponByIndex     *model.Attempt1[int]
	SetFireMode             *model.Attempt1[weapon.FireMode]
	HolsterWeapon           *model.Event

	// Activities
	Fire      *model.Activity
	Reload    *model.Activity
	Death     *model.Activity
	Jump      *model.Activity
	LeanLeft  *model.Activity
	LeanRight *model.Activity
	Crouch    *model.Activity
	Run       *model.Activity
	Prone     *model.Activity
	Sneak     *model.Activity
	Interact  *model.Activity1[Interactable]

	// Inventory
	GetWeaponAmmo    *model.Function[*weapon.Definition, int]
	SetWeaponAmmo    *model.Event2[*weapon.Definition, int]
	AvailableWeapons *model.Collection[*weapon.Definition]
	PickupWeapon     *model.Attempt1[weapon.AmmoTuple]
	DropWeapon       *model.Attempt1[*weapon.Definition]
	OnPickedUpWeapon *model.Event1[*weapon.Definition]
	OnDroppedWeapon  *model.Event1[*weapon.Definition]
}

// NewModel creates a model whose stat defaults come from stats
func NewModel(stats config.EntityStats) *Model {
	return &Model{
		MovementSpeed:       model.NewModifiableValue("movementSpeed", stats.MovementSpeed),
		MovementSpeedCrouch: model.NewModifiableValue("movementSpeedCrouch", stats.MovementSpeedCrouch),
		MovementSpeedRun:    model.NewModifiableValue("movementSpeedRun", stats.MovementSpeedRun),
		MovementSpeedProne:  model.NewModifiableValue("movementSpeedProne", stats.MovementSpeedProne),
		SneakSpeedFactor:    model.NewModifiableValue("sneakSpeedFactor", stats.SneakSpeedFactor),
		JumpHeight:          model.NewModifiableValue("jumpHeight", stats.JumpHeight),
		InAirControl:        model.NewModifiableValue("inAirControl", stats.InAirControl),

		MaxHealth:   model.NewModifiableValue("maxHealth", orDefault(stats.MaxHealth, 100)),
		DamageTaken: model.NewModifiableValue("damageTaken", orDefault(stats.DamageTaken, 1)),

		LookDir:             model.NewValue("lookDir", vmath.Vec3{Z: 1}),
		LookOrigin:          model.NewValue("lookOrigin", vmath.Vec3{}),
		ProjectileOrigin:    model.NewValue("projectileOrigin", vmath.Vec3{}),
		ProjectileOriginDir: model.NewValue("projectileOriginDir", vmath.Vec3{Z: 1}),
		Grounded:            model.NewValue("grounded", false),
		FireMode:            model.NewValue("fireMode", weapon.FireModeNull),
		AvailableFireModes:  model.NewCollection[weapon.FireMode]("availableFireModes"),
		InteractionProgress: model.NewValue("interactionProgress", 0.0),

		MotorMovement: model.NewValue("motorMovement", vmath.Vec2{}),
		MotorVelocity: model.NewValue("motorVelocity", vmath.Vec3{}),
		Footstep:      model.NewEvent1[Foot]("footstep"),
		ExternalForce: model.NewEvent1[vmath.Vec3]("externalForce"),

		Health:        model.NewValue("health", 0.0),
		OnDamageTaken: model.NewEvent1[DamageEvent]("onDamageTaken"),

		CurrentWeaponDefinition: model.NewValue[*weapon.Definition]("currentWeaponDefinition", nil),
		CurrentWeapon:           model.NewValue[*weapon.Weapon]("currentWeapon", nil),
		SelectWeapon:            model.NewAttempt1[*weapon.Definition]("selectWeapon"),
		SelectWeaponByIndex:     model.NewAttempt1[int]("selectWeaponByIndex"),
		SetFireMode:             model.NewAttempt1[weapon.FireMode]("setFireMode"),
		HolsterWeapon:           model.NewEvent("holsterWeapon"),

		Fire:      model.NewActivity("fire"),
		Reload:    model.NewActivity("reload"),
		Death:     model.NewActivity("death"),
		Jump:      model.NewActivity("jump"),
		LeanLeft:  model.NewActivity("leanLeft"),
		LeanRight: model.NewActivity("leanRight"),
		Crouch:    model.NewActivity("crouch"),
		Run:       model.NewActivity("run"),
		Prone:     model.NewActivity("prone"),
		Sneak:     model.NewActivity("sneak"),
		Interact:  model.NewActivity1[Interactable]("interact"),

		GetWeaponAmmo:    model.NewFunction[*weapon.Definition, int]("getWeaponAmmo"),
		SetWeaponAmmo:    model.NewEvent2[*weapon.Definition, int]("setWeaponAmmo"),
		AvailableWeapons: model.NewCollection[*weapon.Definition]("availableWeapons"),
		PickupWeapon:     model.NewAttempt1[weapon.AmmoTuple]("pickupWeapon"),
		DropWeapon:       model.NewAttempt1[*weapon.Definition]("dropWeapon"),
		OnPickedUpWeapon: model.NewEvent1[*weapon.Definition]("onPickedUpWeapon"),
		OnDroppedWeapon:  model.NewEvent1[*weapon.Definition]("onDroppedWeapon"),
	}
}

// Reserve exposes the inventory ammo slots to weapons held by this entity
func (m *Model) Reserve() weapon.Reserve {
	return weapon.Reserve{Get: m.GetWeaponAmmo, Set: m.SetWeaponAmmo}
}

// FirstPersonModel extends Model with the fields of a player-controlled camera
type FirstPersonModel struct {
	Model

	InputLook    *model.Value[vmath.Vec2]
	CameraRecoil *model.Event1[vmath.Vec2]
	Zoom         *model.Activity
}

// NewFirstPersonModel creates a first person model
func NewFirstPersonModel(stats config.EntityStats) *FirstPersonModel {
	return &FirstPersonModel{
		Model:        *NewModel(stats),
		InputLook:    model.NewValue("inputLook", vmath.Vec2{}),
		CameraRecoil: model.NewEvent1[vmath.Vec2]("cameraRecoil"),
		Zoom:         model.NewActivity("zoom"),
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
