package systems

import (
	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
)

// CrashResult is the outcome of one head-position test
type CrashResult struct {
	Cause    events.CrashCause
	Absorbed bool // A held shield cancelled a trail hit this tick
}

// Crashed reports whether the tested cycle dies
func (r CrashResult) Crashed() bool {
	return r.Cause != events.CrashNone
}

// CheckCrash tests p's head against the walls, the blocker and every trail in active, first hit wins
// p's own head segment is skipped; a held shield cancels the first trail hit and is released,
// so any later hit in the same scan is fatal
// blocker may be nil
func CheckCrash(arena engine.Arena, p *components.Player, active []*components.Player, blocker *components.Blocker) CrashResult {
	var res CrashResult
	pos := p.Pos

	if arena.OnWall(pos) {
		res.Cause = events.CrashWall
		return res
	}

	if blocker != nil && blocker.Touches(pos) {
		res.Cause = events.CrashObstacle
		return res
	}

	for _, other := range active {
		first := 0
		if other == p {
			first = 1
		}
		for i := first; i < other.Trail.Len(); i++ {
			if !other.Trail.At(i).Contains(pos) {
				continue
			}
			if p.Shield == nil {
				res.Cause = events.CrashTrail
				return res
			}
			p.DropShield()
			res.Absorbed = true
		}
	}
	return res
}

// CheckShield attaches a free, active, undragged shield to p if p's head touches it
// Only real cycles without a shield can grab; returns true on pickup
func CheckShield(p *components.Player, shield *components.Shield) bool {
	if shield == nil || p.Role != components.RoleReal || p.Shield != nil || !p.Alive() {
		return false
	}
	if !shield.Touches(p.Pos) {
		return false
	}
	p.GrabShield(shield)
	return true
}
