package events

import "github.com/lixenwraith/troff/vmath"

// PlayerPayload identifies a player slot
type PlayerPayload struct {
	Slot int
}

// CrashPayload describes a fatal collision
type CrashPayload struct {
	Slot  int
	Pos   vmath.Vec2
	Cause CrashCause
}

// CrashCause names what a cycle ran into
type CrashCause uint8

const (
	CrashNone CrashCause = iota
	CrashWall
	CrashObstacle
	CrashTrail
)

func (c CrashCause) String() string {
	switch c {
	case CrashWall:
		return "wall"
	case CrashObstacle:
		return "obstacle"
	case CrashTrail:
		return "trail"
	default:
		return "none"
	}
}

// RoundPayload reports the outcome of a round
// Winner is -1 when nobody survived
type RoundPayload struct {
	Winner    int
	Wins      int
	TargetHit bool
}
