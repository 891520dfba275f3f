package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is the shape of a synthesized tone
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one enveloped note; the pitch glides linearly from Freq to Glide
type Tone struct {
	Wave     Wave
	Freq     float64 // Hz, ignored for noise
	Glide    float64 // end Hz, 0 holds Freq
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64 // 0 means 1
}

// tone streams a Tone once and then drains
type tone struct {
	Tone
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	rng     *rand.Rand
}

// NewTone creates a streamer playing t at rate
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	if t.Gain == 0 {
		t.Gain = 1
	}
	if t.Glide == 0 {
		t.Glide = t.Freq
	}
	return &tone{
		Tone:    t,
		rate:    rate,
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
		rng:     rand.New(rand.NewPCG(uint64(t.Freq), uint64(t.Duration))),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for ; n < len(samples) && t.pos < t.total; n++ {
		v := t.sample() * t.gain() * t.Gain
		samples[n][0], samples[n][1] = v, v

		progress := float64(t.pos) / float64(t.total)
		freq := t.Freq + (t.Glide-t.Freq)*progress
		t.phase = math.Mod(t.phase+freq/float64(t.rate), 1)
		t.pos++
	}
	return n, n > 0
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.Wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*t.phase - 1
	case WaveNoise:
		return 2*t.rng.Float64() - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

// gain is the linear attack / release envelope at the current position
func (t *tone) gain() float64 {
	g := 1.0
	if t.attack > 0 && t.pos < t.attack {
		g = float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		g = min(g, float64(left)/float64(t.release))
	}
	return g
}

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	fireDuration    = 90 * time.Millisecond
	dryFireDuration = 30 * time.Millisecond
	reloadNote      = 60 * time.Millisecond
	reloadGap       = 120 * time.Millisecond
	stepDuration    = 50 * time.Millisecond
	clickAttack     = 2 * time.Millisecond
)

var effectTones = map[SoundType][]Tone{
	// noise crack over a falling thump, mixed
	SoundFire: {
		{Wave: WaveNoise, Duration: fireDuration, Attack: clickAttack, Release: 70 * time.Millisecond, Gain: 0.6},
		{Wave: WaveSine, Freq: 90, Glide: 50, Duration: fireDuration, Attack: clickAttack, Release: 80 * time.Millisecond, Gain: 0.4},
	},
	SoundDryFire: {
		{Wave: WaveSquare, Freq: 2400, Duration: dryFireDuration, Attack: clickAttack, Release: 20 * time.Millisecond},
	},
	// magazine out, pause, magazine in; played in sequence
	SoundReload: {
		{Wave: WaveSaw, Freq: 600, Glide: 500, Duration: reloadNote, Attack: clickAttack, Release: 40 * time.Millisecond},
		{Wave: WaveSaw, Freq: 450, Glide: 400, Duration: reloadNote, Attack: clickAttack, Release: 40 * time.Millisecond},
	},
	SoundFootstep: {
		{Wave: WaveNoise, Duration: stepDuration, Attack: 5 * time.Millisecond, Release: stepDuration / 2},
	},
	SoundProneFootstep: {
		{Wave: WaveNoise, Duration: 2 * stepDuration, Attack: 5 * time.Millisecond, Release: stepDuration},
	},
}

// GetSoundEffect returns the streamer for st at its configured volume, nil for unknown types
func GetSoundEffect(st SoundType, s Settings) beep.Streamer {
	tones, ok := effectTones[st]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(s.SampleRate)

	var out beep.Streamer
	switch st {
	case SoundReload:
		out = beep.Seq(NewTone(tones[0], rate), beep.Silence(rate.N(reloadGap)), NewTone(tones[1], rate))
	default:
		parts := make([]beep.Streamer, len(tones))
		for i, t := range tones {
			parts[i] = NewTone(t, rate)
		}
		out = beep.Mix(parts...)
	}
	return newVolume(out, s.volume(st))
}
