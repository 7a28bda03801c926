package systems

import (
	"fmt"
	"log"

	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
)

// EventLogSystem writes every dispatched event to the debug log
type EventLogSystem struct {
	logger *log.Logger
}

// NewEventLogSystem creates a logger-backed handler; nil uses the standard logger
func NewEventLogSystem(logger *log.Logger) *EventLogSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &EventLogSystem{logger: logger}
}

// EventTypes returns every registered event type
func (s *EventLogSystem) EventTypes() []events.EventType {
	return events.Types()
}

// HandleEvent logs the event with its frame and payload
func (s *EventLogSystem) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	s.logger.Printf("event: frame=%d at=%v %s%s", event.Frame, event.At, event.Type, describePayload(event.Payload))
}

func describePayload(payload any) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case *events.PlayerPayload:
		return fmt.Sprintf(" slot=%d", p.Slot)
	case *events.CrashPayload:
		return fmt.Sprintf(" slot=%d pos=%v cause=%s", p.Slot, p.Pos, p.Cause)
	case *events.RoundPayload:
		return fmt.Sprintf(" winner=%d wins=%d target=%v", p.Winner, p.Wins, p.TargetHit)
	default:
		return fmt.Sprintf(" payload=%T", p)
	}
}
