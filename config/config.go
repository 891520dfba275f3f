// Package config loads sandbox and entity configuration from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration decodes TOML strings such as "1.5s" or "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for toml
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the root document
type Config struct {
	Log         LogConfig         `toml:"log"`
	Engine      EngineConfig      `toml:"engine"`
	Entity      EntityStats       `toml:"entity"`
	Weapons     []WeaponConfig    `toml:"weapon"`
	Keys        map[string]string `toml:"keys"`
	Inventory   InventoryConfig   `toml:"inventory"`
	Interaction InteractionConfig `toml:"interaction"`
	Footsteps   FootstepConfig    `toml:"footsteps"`
	Audio       AudioConfig       `toml:"audio"`
	Loadout     []LoadoutEntry    `toml:"loadout"`
}

// LogConfig selects logrus level, formatter and sink
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
	File   string `toml:"file"`   // empty discards output
}

// EngineConfig controls the simulation loop
type EngineConfig struct {
	TickRate int `toml:"tick_rate"` // ticks per second
}

// TickInterval converts TickRate to a scheduler interval
func (e EngineConfig) TickInterval() time.Duration {
	if e.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(e.TickRate)
}

// EntityStats are the base values of an entity's modifiable stats
type EntityStats struct {
	MovementSpeed       float64 `toml:"movement_speed"`
	MovementSpeedCrouch float64 `toml:"movement_speed_crouch"`
	MovementSpeedRun    float64 `toml:"movement_speed_run"`
	MovementSpeedProne  float64 `toml:"movement_speed_prone"`
	SneakSpeedFactor    float64 `toml:"sneak_speed_factor"`
	JumpHeight          float64 `toml:"jump_height"`
	InAirControl        float64 `toml:"in_air_control"`
	MaxHealth           float64 `toml:"max_health"`
	DamageTaken         float64 `toml:"damage_taken"`
}

// WeaponConfig is one [[weapon]] table
type WeaponConfig struct {
	Name             string     `toml:"name"`
	ClipSize         int        `toml:"clip_size"`
	FireRate         float64    `toml:"fire_rate"`
	ReloadCooldown   Duration   `toml:"reload_cooldown"`
	Accuracy         float64    `toml:"accuracy"`
	Mobility         float64    `toml:"mobility"`
	Recoil           float64    `toml:"recoil"`
	FireModes        []string   `toml:"fire_modes"`
	RecoilPatternMin [2]float64 `toml:"recoil_pattern_min"`
	RecoilPatternMax [2]float64 `toml:"recoil_pattern_max"`
}

// InventoryConfig bounds the simple inventory
type InventoryConfig struct {
	MaxWeapons int `toml:"max_weapons"`
}

// InteractionConfig bounds interaction reach
type InteractionConfig struct {
	Distance float64 `toml:"distance"`
}

// FootstepConfig sets travel distance per footstep
type FootstepConfig struct {
	Distance      float64 `toml:"distance"`
	ProneDistance float64 `toml:"prone_distance"`
}

// AudioConfig controls the tone synthesizer
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"` // 0..1
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"` // per sound name, 0..1
}

// LoadoutEntry is a weapon pickup placed in the sandbox
type LoadoutEntry struct {
	Weapon   string     `toml:"weapon"`
	Ammo     int        `toml:"ammo"`
	Position [3]float64 `toml:"position"`
	Duration Duration   `toml:"duration"`
}

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Load reads and parses a TOML file, layering it over Default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over Default and validates the result
// Unknown keys are rejected so typos surface at load time
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and cross references, joining every problem found
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Engine.TickRate <= 0 {
		fail("engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Entity.MaxHealth <= 0 {
		fail("entity.max_health must be positive, got %v", c.Entity.MaxHealth)
	}
	if c.Inventory.MaxWeapons < 1 {
		fail("inventory.max_weapons must be at least 1, got %d", c.Inventory.MaxWeapons)
	}
	if c.Interaction.Distance < 0 {
		fail("interaction.distance must not be negative")
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		fail("audio.master_volume must be within [0,1], got %v", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		fail("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	names := make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		switch {
		case w.Name == "":
			fail("weapon[%d]: name is required", i)
		case names[w.Name]:
			fail("weapon[%d]: duplicate name %q", i, w.Name)
		}
		names[w.Name] = true
		if w.ClipSize <= 0 {
			fail("weapon %q: clip_size must be positive", w.Name)
		}
		if w.FireRate <= 0 {
			fail("weapon %q: fire_rate must be positive", w.Name)
		}
		if w.Accuracy < 0 || w.Accuracy > 1 {
			fail("weapon %q: accuracy must be within [0,1]", w.Name)
		}
		if len(w.FireModes) == 0 {
			fail("weapon %q: at least one fire mode required", w.Name)
		}
	}
	for i, l := range c.Loadout {
		if !names[l.Weapon] {
			fail("loadout[%d]: unknown weapon %q", i, l.Weapon)
		}
	}

	return errors.Join(errs...)
}
