package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone returns a finite oscillator of the given shape
// Frequencies the generator rejects (at or above Nyquist) degrade to silence
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)

	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	if wave == WaveSquare {
		s = squared(s)
	}
	return beep.Take(n, s)
}

// squared clips a sine into a square wave of the same phase
func squared(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			v := 1.0
			if samples[i][0] < 0 {
				v = -1.0
			}
			samples[i][0] = v
			samples[i][1] = v
		}
		return n, ok
	})
}

// noise returns d worth of white noise from rng
func noise(d time.Duration, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	remaining := rate.N(d)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		n := len(samples)
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			v := float64(rng.Intn(2001)-1000) / 1000
			samples[i][0] = v
			samples[i][1] = v
		}
		remaining -= n
		return n, true
	})
}

// fade shapes a stream with a linear attack and a linear release ending at total
type fade struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	if f.pos >= f.total {
		return 0, false
	}
	if rest := f.total - f.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok := f.streamer.Stream(samples)
	releaseStart := f.total - f.release
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if f.release > 0 && f.pos >= releaseStart {
			gain = math.Min(gain, float64(f.total-f.pos)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream by a linear factor; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	attackTime  = 5 * time.Millisecond
	releaseTime = 60 * time.Millisecond
)

// mixFor mixes layers and bounds the result to d
func mixFor(d time.Duration, rate beep.SampleRate, layers ...beep.Streamer) beep.Streamer {
	return beep.Take(rate.N(d), beep.Mix(layers...))
}

// shaped is a tone with the default click-free envelope
func shaped(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newFade(tone(freq, d, wave, rate), d, attackTime, releaseTime, rate)
}

// Effect builds the streamer for a sound type, nil for unknown types
func Effect(st SoundType, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	switch st {
	case SoundJoin:
		half := constants.JoinSoundDuration / 2
		return newVolume(beep.Seq(
			shaped(constants.JoinSoundFreq, half, WaveSine, rate),
			shaped(constants.JoinSoundFreq*1.5, half, WaveSine, rate),
		), 0.4)

	case SoundCrash:
		d := constants.CrashSoundDuration
		return newVolume(mixFor(d, rate,
			newFade(noise(d, rate, rng), d, attackTime, d*3/4, rate),
			newVolume(shaped(90, d, WaveSquare, rate), 0.3),
		), 0.35)

	case SoundShield:
		d := constants.ShieldSoundDuration
		return newVolume(mixFor(d, rate,
			newVolume(shaped(constants.ShieldSoundFreq, d, WaveSine, rate), 0.7),
			newVolume(shaped(constants.ShieldSoundFreq*2, d, WaveSine, rate), 0.3),
		), 0.4)

	case SoundCross:
		return newVolume(shaped(constants.CrossSoundFreq, constants.CrossSoundDuration, WaveSquare, rate), 0.25)

	case SoundRed:
		return newVolume(shaped(constants.RedSoundFreq, constants.LightSoundDuration, WaveSine, rate), 0.4)

	case SoundYellow:
		return newVolume(shaped(constants.YellowSoundFreq, constants.LightSoundDuration, WaveSine, rate), 0.4)

	case SoundGreen:
		return newVolume(shaped(constants.GreenSoundFreq, constants.LightSoundDuration*2, WaveSine, rate), 0.4)

	case SoundStart:
		third := constants.StartSoundDuration / 3
		return newVolume(beep.Seq(
			shaped(constants.StartSoundFreq, third, WaveSquare, rate),
			shaped(constants.StartSoundFreq*1.25, third, WaveSquare, rate),
			shaped(constants.StartSoundFreq*1.5, third, WaveSquare, rate),
		), 0.2)

	case SoundClear:
		half := constants.ClearSoundDuration / 2
		return newVolume(beep.Seq(
			shaped(constants.ClearSoundFreq*1.5, half, WaveSine, rate),
			shaped(constants.ClearSoundFreq, half, WaveSine, rate),
		), 0.4)

	default:
		return nil
	}
}
