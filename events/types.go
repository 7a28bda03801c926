package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventNone is never pushed; reserved so zero-valued triggers are invalid
	EventNone EventType = iota

	// EventGameStarted signals the program finished setup
	// Trigger: MatchSystem construction | Payload: nil
	EventGameStarted

	// EventPlayerJoined signals a slot committed to the next round
	// Trigger: MatchSystem.Join | Consumer: AudioSystem, match FSM | Payload: *PlayerPayload
	EventPlayerJoined

	// EventStartRequest signals the start control was used with enough players
	// Trigger: MatchSystem.Start | Consumer: match FSM | Payload: nil
	EventStartRequest

	// EventCountdownRed, EventCountdownYellow and EventCountdownGreen mark countdown lights
	// Trigger: match FSM on_enter actions | Consumer: AudioSystem, renderer | Payload: nil
	EventCountdownRed
	EventCountdownYellow
	EventCountdownGreen

	// EventCountdownElapsed signals the current countdown light ran out
	// Trigger: ClockScheduler callback | Consumer: match FSM | Payload: nil
	EventCountdownElapsed

	// EventPlayerCrashed signals a cycle hit a wall, the obstacle or a trail
	// Trigger: MatchSystem round resolution | Consumer: AudioSystem, renderer | Payload: *CrashPayload
	EventPlayerCrashed

	// EventShieldGrabbed signals a cycle picked up the shield
	// Payload: *PlayerPayload
	EventShieldGrabbed

	// EventShieldAbsorbed signals a held shield cancelled one trail collision
	// Payload: *PlayerPayload
	EventShieldAbsorbed

	// EventRoundDecided signals at most one cycle is left
	// Trigger: MatchSystem round resolution | Consumer: match FSM | Payload: *RoundPayload
	EventRoundDecided

	// EventRoundReset signals the round end delay elapsed
	// Trigger: ClockScheduler callback | Consumer: match FSM | Payload: nil
	EventRoundReset

	// EventClearOffered signals the win target was reached and wins must be cleared
	// Trigger: match FSM on_enter | Payload: nil
	EventClearOffered

	// EventWinsCleared signals wins were reset for one slot or all (Slot == -1)
	// Consumer: AudioSystem, match FSM | Payload: *PlayerPayload
	EventWinsCleared

	// EventDemoStarted and EventDemoStopped bracket attract mode
	// Consumer: renderer (fade match view) | Payload: nil
	EventDemoStarted
	EventDemoStopped

	eventTypeCount
)

func (e EventType) String() string {
	if name := GetEventName(e); name != "" {
		return name
	}
	return "Unknown"
}

// GameEvent is one notification emitted by the simulation
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64        // Tick the event was emitted in
	At      time.Duration // Game time of emission
}
