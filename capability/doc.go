// Package capability contains the components that give an entity its behaviour
//
// Each component binds getters, conditions and handlers into the entity model in
// RegisterBindings and keeps the authoritative state those bindings report. No
// component references another directly; they meet only on model fields.
//
// Binding map:
//
//	Motor                    jump run leanLeft leanRight crouch prone grounded motorVelocity
//	WeaponHandler            fire reload selectWeapon(ByIndex) setFireMode fireMode availableFireModes
//	                         currentWeapon(Definition) projectileOrigin(Dir) holsterWeapon
//	                         onPickedUpWeapon onDroppedWeapon
//	FirstPersonWeaponHandler + zoom footstep externalForce cameraRecoil
//	DamageHandler            health onDamageTaken death
//	InstantDespawn           death.OnStart
//	InteractionHandler       interact interactionProgress
//	Inventory                getWeaponAmmo setWeaponAmmo availableWeapons pickupWeapon dropWeapon
//	Footsteps                sneak footstep
//	ShellEjector             fire effects from the context pool
package capability

import "errors"

// ErrNoBody is returned by components that need a physics body on an entity without one
var ErrNoBody = errors.New("entity has no body")
