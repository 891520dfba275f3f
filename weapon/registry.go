package weapon

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/vmath"
)

// ErrUnknownWeapon is returned by Registry lookups for unregistered names
var ErrUnknownWeapon = errors.New("unknown weapon")

// Registry maps weapon names to their shared definitions
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// FromConfig builds a registry from [[weapon]] tables
func FromConfig(weapons []config.WeaponConfig) (*Registry, error) {
	r := NewRegistry()
	for _, wc := range weapons {
		modes := make([]FireMode, 0, len(wc.FireModes))
		for _, s := range wc.FireModes {
			m, err := ParseFireMode(s)
			if err != nil {
				return nil, fmt.Errorf("weapon %q: %w", wc.Name, err)
			}
			modes = append(modes, m)
		}
		def := &Definition{
			Name:             wc.Name,
			ClipSize:         wc.ClipSize,
			FireRate:         wc.FireRate,
			ReloadCooldown:   wc.ReloadCooldown.Duration,
			Accuracy:         wc.Accuracy,
			Mobility:         wc.Mobility,
			Recoil:           wc.Recoil,
			FireModes:        modes,
			RecoilPatternMin: vmath.Vec2{X: wc.RecoilPatternMin[0], Y: wc.RecoilPatternMin[1]},
			RecoilPatternMax: vmath.Vec2{X: wc.RecoilPatternMax[0], Y: wc.RecoilPatternMax[1]},
		}
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds def; names must be unique
func (r *Registry) Register(def *Definition) error {
	if _, ok := r.defs[def.Name]; ok {
		return fmt.Errorf("weapon %q already registered", def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Get returns the definition for name
func (r *Registry) Get(name string) (*Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
	}
	return def, nil
}

// Names returns registered names in registration order
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
