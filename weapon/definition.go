// Package weapon implements weapon definitions and the fire / reload state of a held weapon
package weapon

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lixenwraith/fps-model/vmath"
)

// FireMode selects how a held trigger is translated into shots
type FireMode uint8

const (
	FireModeNull FireMode = iota // not firing at all
	SemiAuto                     // one shot per trigger pull
	FullAuto                     // shots every cooldown while held
)

var fireModeNames = [...]string{"null", "semi_auto", "full_auto"}

func (m FireMode) String() string {
	if int(m) < len(fireModeNames) {
		return fireModeNames[m]
	}
	return fmt.Sprintf("FireMode(%d)", m)
}

// ParseFireMode accepts the config spellings ("semi_auto", "SEMI-AUTO", "full_auto", ...)
func ParseFireMode(s string) (FireMode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range fireModeNames {
		if norm == name {
			return FireMode(i), nil
		}
	}
	return FireModeNull, fmt.Errorf("unknown fire mode %q", s)
}

// Definition is the static description shared by every instance of a weapon kind
type Definition struct {
	Name           string
	ClipSize       int
	FireRate       float64 // shots per second
	ReloadCooldown time.Duration
	Accuracy       float64 // [0,1]
	Mobility       float64 // movement speed scale while held
	Recoil         float64 // scale of the recoil pattern
	FireModes      []FireMode

	RecoilPatternMin vmath.Vec2
	RecoilPatternMax vmath.Vec2
}

// ShootingCooldown is the minimum interval between two shots
func (d *Definition) ShootingCooldown() time.Duration {
	if d.FireRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / d.FireRate)
}

// Spread is the complement of accuracy
func (d *Definition) Spread() float64 { return 1 - d.Accuracy }

// Supports reports whether m is one of the definition's fire modes
func (d *Definition) Supports(m FireMode) bool {
	return slices.Contains(d.FireModes, m)
}

func (d *Definition) String() string { return d.Name }

// AmmoTuple carries a weapon kind together with an ammo amount, e.g. for pickups
type AmmoTuple struct {
	Weapon *Definition
	Ammo   int
}
