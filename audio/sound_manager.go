package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

// SoundManager plays synthesized effects through the system speaker
// Without an audio device it stays silent and Play is a no-op
type SoundManager struct {
	mu          sync.Mutex
	settings    Settings
	mixer       *beep.Mixer
	log         *logrus.Entry
	initialized bool

	// output hands a streamer to the device; replaced in tests
	output func(beep.Streamer)
	played [soundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(s Settings, log *logrus.Entry) *SoundManager {
	return &SoundManager{
		settings: s,
		mixer:    &beep.Mixer{},
		log:      log.WithField("component", "audio"),
	}
}

// Initialize opens the speaker; a missing device degrades to silence
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.settings.Enabled {
		sm.log.Info("audio disabled")
		return nil
	}

	rate := beep.SampleRate(sm.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		sm.log.WithError(err).Warn("no audio device, running silent")
		return nil
	}
	speaker.Play(sm.mixer)
	sm.output = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	sm.log.WithField("sample_rate", sm.settings.SampleRate).Debug("speaker ready")
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.output = nil
	sm.initialized = false
}

// Play mixes one instance of st into the output
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.output == nil {
		return
	}
	s := GetSoundEffect(st, sm.settings)
	if s == nil {
		return
	}
	sm.output(s)
	sm.played[st]++
}

// Played returns how many times st was sent to the output
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}
