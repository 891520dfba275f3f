// Package input turns terminal key events into per-tick intent snapshots
package input

// Intent is a semantic action a key can be bound to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit

	// Movement axes
	IntentMoveForward
	IntentMoveBack
	IntentMoveLeft
	IntentMoveRight

	// Look axes
	IntentLookLeft
	IntentLookRight
	IntentLookUp
	IntentLookDown

	// Actions
	IntentFire
	IntentReload
	IntentJump
	IntentCrouch
	IntentProne
	IntentSneak
	IntentRun
	IntentLeanLeft
	IntentLeanRight
	IntentInteract
	IntentZoom
	IntentHolster
	IntentFireMode

	// Weapon slots
	IntentWeapon1
	IntentWeapon2
	IntentWeapon3
	IntentWeapon4

	intentCount
)

// intentNames are the [keys] config names, indexed by Intent
var intentNames = [intentCount]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentMoveForward: "move_forward",
	IntentMoveBack:    "move_back",
	IntentMoveLeft:    "move_left",
	IntentMoveRight:   "move_right",
	IntentLookLeft:    "look_left",
	IntentLookRight:   "look_right",
	IntentLookUp:      "look_up",
	IntentLookDown:    "look_down",
	IntentFire:        "fire",
	IntentReload:      "reload",
	IntentJump:        "jump",
	IntentCrouch:      "crouch",
	IntentProne:       "prone",
	IntentSneak:       "sneak",
	IntentRun:         "run",
	IntentLeanLeft:    "lean_left",
	IntentLeanRight:   "lean_right",
	IntentInteract:    "interact",
	IntentZoom:        "zoom",
	IntentHolster:     "holster",
	IntentFireMode:    "fire_mode",
	IntentWeapon1:     "weapon_1",
	IntentWeapon2:     "weapon_2",
	IntentWeapon3:     "weapon_3",
	IntentWeapon4:     "weapon_4",
}

func (i Intent) String() string {
	if i >= intentCount {
		return "unknown"
	}
	return intentNames[i]
}

// ParseIntent resolves a config name
func ParseIntent(name string) (Intent, bool) {
	for i := IntentQuit; i < intentCount; i++ {
		if intentNames[i] == name {
			return i, true
		}
	}
	return IntentNone, false
}

// WeaponSlot returns the zero-based slot of a weapon intent, -1 otherwise
func (i Intent) WeaponSlot() int {
	if i >= IntentWeapon1 && i <= IntentWeapon4 {
		return int(i - IntentWeapon1)
	}
	return -1
}
