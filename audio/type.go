// Package audio synthesizes short tones for entity events on gopxl/beep
package audio

import "github.com/lixenwraith/fps-model/config"

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire          SoundType = iota // shot leaving the barrel
	SoundDryFire                        // trigger pulled on an empty clip
	SoundReload                         // reload started
	SoundFootstep                       // standing or crouched step
	SoundProneFootstep                  // crawling step
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"fire", "dry_fire", "reload", "footstep", "prone_footstep"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Player is anything that can play a sound effect
type Player interface {
	Play(s SoundType)
}

// Settings are the resolved volumes of the synthesizer
type Settings struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	Volumes      [soundTypeCount]float64
}

// NewSettings resolves per-sound volumes by name, missing names play at full volume
func NewSettings(cfg config.AudioConfig) Settings {
	s := Settings{
		Enabled:      cfg.Enabled,
		MasterVolume: cfg.MasterVolume,
		SampleRate:   cfg.SampleRate,
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		v, ok := cfg.Volumes[st.String()]
		if !ok {
			v = 1
		}
		s.Volumes[st] = v
	}
	return s
}

// volume returns the master-scaled gain of st
func (s Settings) volume(st SoundType) float64 {
	return s.Volumes[st] * s.MasterVolume
}
