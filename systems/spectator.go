package systems

import (
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/network"
)

// Broadcaster fans a message out to every spectator
type Broadcaster interface {
	Broadcast(msg *network.Message)
}

// SpectatorSystem forwards presentation events to the spectator feed
// Internal FSM triggers (start request, elapsed timers, round reset) are not forwarded
type SpectatorSystem struct {
	feed Broadcaster
}

// NewSpectatorSystem creates a handler publishing to feed
func NewSpectatorSystem(feed Broadcaster) *SpectatorSystem {
	return &SpectatorSystem{feed: feed}
}

// EventTypes returns the forwarded event types
func (s *SpectatorSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameStarted,
		events.EventPlayerJoined,
		events.EventCountdownRed,
		events.EventCountdownYellow,
		events.EventCountdownGreen,
		events.EventPlayerCrashed,
		events.EventShieldGrabbed,
		events.EventShieldAbsorbed,
		events.EventRoundDecided,
		events.EventClearOffered,
		events.EventWinsCleared,
		events.EventDemoStarted,
		events.EventDemoStopped,
	}
}

// HandleEvent converts event to a feed message and broadcasts it
func (s *SpectatorSystem) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	if s.feed == nil {
		return
	}
	s.feed.Broadcast(EventMessage(event))
}

// EventMessage flattens a game event into a feed message
func EventMessage(event events.GameEvent) *network.Message {
	msg := network.NewMessage(network.MsgEvent)
	msg.Event = event.Type.String()
	msg.Frame = event.Frame
	msg.AtMs = event.At.Milliseconds()

	switch p := event.Payload.(type) {
	case *events.PlayerPayload:
		msg.Slot = p.Slot
	case *events.CrashPayload:
		msg.Slot = p.Slot
		msg.X, msg.Y = p.Pos.X, p.Pos.Y
		msg.Cause = p.Cause.String()
	case *events.RoundPayload:
		msg.Winner = p.Winner
		msg.Wins = p.Wins
		msg.Target = p.TargetHit
	}
	return msg
}
