package components

import (
	"fmt"
	"time"

	"github.com/lixenwraith/troff/vmath"
)

// PlayerState is the motion state of a light cycle
type PlayerState uint8

const (
	// PlayerIdle is invisible, not yet joined or fully removed
	PlayerIdle PlayerState = iota
	// PlayerReady is alive; stepped each tick while a round runs
	PlayerReady
	// PlayerDying shows the death effect; neither stepped nor collidable
	PlayerDying
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerReady:
		return "Ready"
	case PlayerDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// PlayerRole separates human slots from scripted demo cycles
type PlayerRole uint8

const (
	RoleReal PlayerRole = iota
	RoleScripted
)

// Player is one light cycle
type Player struct {
	Slot  int
	Role  PlayerRole
	State PlayerState

	Pos     vmath.Vec2
	Heading vmath.Vec2

	StartPos     vmath.Vec2
	StartHeading vmath.Vec2

	Trail  Trail
	Shield *Shield
	Wins   WinCounter

	// Death effect bookkeeping for the presentation layer
	Exploding  bool
	DyingSince time.Duration
}

// NewPlayer creates an idle cycle; startHeading must be axis-aligned
func NewPlayer(slot int, role PlayerRole, startPos, startHeading vmath.Vec2) *Player {
	if !startHeading.IsAxisAligned() {
		panic(fmt.Sprintf("player %d: start heading %v is not axis-aligned", slot, startHeading))
	}
	return &Player{
		Slot:         slot,
		Role:         role,
		StartPos:     startPos,
		StartHeading: startHeading,
	}
}

// Alive reports whether the cycle is moving and collidable
func (p *Player) Alive() bool {
	return p.State == PlayerReady
}

// SetReady places the cycle at its start with a fresh trail
func (p *Player) SetReady() {
	if p.State == PlayerReady {
		panic(fmt.Sprintf("player %d: set ready while already ready", p.Slot))
	}
	p.Pos = p.StartPos
	p.Heading = p.StartHeading
	p.Trail.Clear()
	p.Trail.AppendSegment(p.Pos)
	p.Shield = nil
	p.Exploding = false
	p.State = PlayerReady
}

// Step advances one grid unit along the heading and grows the head segment
func (p *Player) Step() {
	p.mustBeReady("step")
	p.Pos = p.Pos.Add(p.Heading)
	p.Trail.ExtendHead(p.Pos, p.Heading.Negative())
	if p.Shield != nil {
		p.Shield.Follow(p.Pos)
	}
}

// ChangeHeading rotates the heading 90 degrees, +1 left and -1 right, and starts a new segment
func (p *Player) ChangeHeading(turn int) {
	p.mustBeReady("turn")
	if turn != 1 && turn != -1 {
		panic(fmt.Sprintf("player %d: invalid turn %d", p.Slot, turn))
	}
	p.Heading = p.Heading.Rotate(turn)
	p.Trail.AppendSegment(p.Pos)
}

// SetDead leaves Ready; any held shield jumps away
// With explode the trail stays visible until FinishDying, otherwise the cycle is removed at once
func (p *Player) SetDead(explode bool, now time.Duration) {
	p.mustBeReady("kill")
	p.DropShield()
	if explode {
		p.State = PlayerDying
		p.Exploding = true
		p.DyingSince = now
		return
	}
	p.Trail.Clear()
	p.State = PlayerIdle
}

// FinishDying completes the death effect; no-op unless Dying
func (p *Player) FinishDying() {
	if p.State != PlayerDying {
		return
	}
	p.Trail.Clear()
	p.Exploding = false
	p.State = PlayerIdle
}

// GrabShield attaches s to the cycle
func (p *Player) GrabShield(s *Shield) {
	s.Grab(p.Slot)
	s.Follow(p.Pos)
	p.Shield = s
}

// DropShield sends a held shield to a new random position
func (p *Player) DropShield() {
	if p.Shield == nil {
		return
	}
	p.Shield.Jump()
	p.Shield = nil
}

func (p *Player) mustBeReady(op string) {
	if p.State != PlayerReady {
		panic(fmt.Sprintf("player %d: %s in state %s", p.Slot, op, p.State))
	}
}
