package config

import _ "embed"

//go:embed default.toml
var defaultTOML []byte

// DefaultTOML returns the embedded reference configuration
func DefaultTOML() []byte { return defaultTOML }

// Default returns the built-in configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Engine: EngineConfig{TickRate: 60},
		Entity: EntityStats{
			MovementSpeed:       5,
			MovementSpeedCrouch: 2.5,
			MovementSpeedRun:    8,
			MovementSpeedProne:  1,
			SneakSpeedFactor:    0.5,
			JumpHeight:          1.2,
			InAirControl:        0.3,
			MaxHealth:           100,
			DamageTaken:         1,
		},
		Keys:        map[string]string{},
		Inventory:   InventoryConfig{MaxWeapons: 2},
		Interaction: InteractionConfig{Distance: 3},
		Footsteps:   FootstepConfig{Distance: 3, ProneDistance: 3},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			Volumes:      map[string]float64{},
		},
	}
}

// Sandbox returns Default extended with the embedded weapons and loadout
func Sandbox() (*Config, error) {
	return Parse(defaultTOML)
}
