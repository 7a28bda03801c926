package constants

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick; each tick moves every live cycle one grid unit
	GameUpdateInterval = 50 * time.Millisecond

	// MaxTickDelta caps the time fed into the scheduler after a stall (suspend, debugger)
	MaxTickDelta = 250 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "troff.log"
	MaxLogSize  = 10 * 1024 * 1024
)
