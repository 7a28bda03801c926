package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Effect Durations
const (
	JoinSoundDuration   = 150 * time.Millisecond
	CrashSoundDuration  = 400 * time.Millisecond
	ShieldSoundDuration = 250 * time.Millisecond
	CrossSoundDuration  = 120 * time.Millisecond
	LightSoundDuration  = 300 * time.Millisecond
	StartSoundDuration  = 600 * time.Millisecond
	ClearSoundDuration  = 350 * time.Millisecond
)

// Effect Pitches in Hz
const (
	JoinSoundFreq   = 660.0
	ShieldSoundFreq = 990.0
	CrossSoundFreq  = 1320.0
	RedSoundFreq    = 440.0
	YellowSoundFreq = 440.0
	GreenSoundFreq  = 880.0
	StartSoundFreq  = 220.0
	ClearSoundFreq  = 330.0
)
