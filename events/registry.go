package events

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a config name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the config name for an EventType
func GetEventName(et EventType) string {
	return typeToName[et]
}

func init() {
	RegisterType("EventGameStarted", EventGameStarted)
	RegisterType("EventPlayerJoined", EventPlayerJoined)
	RegisterType("EventStartRequest", EventStartRequest)
	RegisterType("EventCountdownRed", EventCountdownRed)
	RegisterType("EventCountdownYellow", EventCountdownYellow)
	RegisterType("EventCountdownGreen", EventCountdownGreen)
	RegisterType("EventCountdownElapsed", EventCountdownElapsed)
	RegisterType("EventPlayerCrashed", EventPlayerCrashed)
	RegisterType("EventShieldGrabbed", EventShieldGrabbed)
	RegisterType("EventShieldAbsorbed", EventShieldAbsorbed)
	RegisterType("EventRoundDecided", EventRoundDecided)
	RegisterType("EventRoundReset", EventRoundReset)
	RegisterType("EventClearOffered", EventClearOffered)
	RegisterType("EventWinsCleared", EventWinsCleared)
	RegisterType("EventDemoStarted", EventDemoStarted)
	RegisterType("EventDemoStopped", EventDemoStopped)
}

// Types returns every registered event type in declaration order
func Types() []EventType {
	types := make([]EventType, 0, len(typeToName))
	for et := EventNone + 1; et < eventTypeCount; et++ {
		if _, ok := typeToName[et]; ok {
			types = append(types, et)
		}
	}
	return types
}
