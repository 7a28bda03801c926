package systems

import (
	"github.com/lixenwraith/troff/audio"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
)

// SoundPlayer plays synthesized effects
type SoundPlayer interface {
	Play(st audio.SoundType) bool
}

// AudioSystem turns match events into sound effects
// Decouples the simulation from the audio backend
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio system; player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

var eventSounds = map[events.EventType]audio.SoundType{
	events.EventGameStarted:     audio.SoundStart,
	events.EventPlayerJoined:    audio.SoundJoin,
	events.EventPlayerCrashed:   audio.SoundCrash,
	events.EventShieldGrabbed:   audio.SoundShield,
	events.EventShieldAbsorbed:  audio.SoundCross,
	events.EventCountdownRed:    audio.SoundRed,
	events.EventCountdownYellow: audio.SoundYellow,
	events.EventCountdownGreen:  audio.SoundGreen,
	events.EventWinsCleared:     audio.SoundClear,
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameStarted,
		events.EventPlayerJoined,
		events.EventPlayerCrashed,
		events.EventShieldGrabbed,
		events.EventShieldAbsorbed,
		events.EventCountdownRed,
		events.EventCountdownYellow,
		events.EventCountdownGreen,
		events.EventWinsCleared,
	}
}

// HandleEvent plays the effect mapped to the event
func (s *AudioSystem) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	if s.player == nil {
		return
	}
	st, ok := eventSounds[event.Type]
	if !ok {
		return
	}
	// Clearing the whole board restarts the match, a single reset keeps the clear sound
	if p, isPlayer := event.Payload.(*events.PlayerPayload); event.Type == events.EventWinsCleared && isPlayer && p.Slot < 0 {
		st = audio.SoundStart
	}
	s.player.Play(st)
}
