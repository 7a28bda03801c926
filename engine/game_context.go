package engine

import (
	"fmt"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

// Arena is the playfield geometry, fixed for the lifetime of a match
// Walls sit on x == 0, y == 0, x == Width and y == Height; cycles move strictly inside
type Arena struct {
	Width  int
	Height int
	Unit   int
	Inset  int // Distance of start positions from the corners
}

// NewArena sizes the arena to a terminal of cols x rows cells
// The last rows are reserved for the status line; inset is in grid units and capped so all four starts fit
func NewArena(cols, rows, unit, inset int) (Arena, error) {
	if unit <= 0 {
		return Arena{}, fmt.Errorf("grid unit must be positive, got %d", unit)
	}
	w := vmath.FloorTo(cols-1, unit)
	h := vmath.FloorTo(rows-1-constants.StatusRows, unit)
	if w < 8*unit || h < 8*unit {
		return Arena{}, fmt.Errorf("terminal %dx%d too small for grid unit %d", cols, rows, unit)
	}

	maxInset := vmath.MinInt(vmath.FloorTo(w/4, unit), vmath.FloorTo(h/4, unit))
	inset = vmath.MinInt(inset*unit, maxInset)
	if inset < unit {
		inset = unit
	}

	return Arena{Width: w, Height: h, Unit: unit, Inset: inset}, nil
}

// Center returns the grid point closest to the middle of the arena
func (a Arena) Center() vmath.Vec2 {
	return vmath.V(vmath.FloorTo(a.Width/2, a.Unit), vmath.FloorTo(a.Height/2, a.Unit))
}

// OnWall reports whether pos touches the arena boundary
func (a Arena) OnWall(pos vmath.Vec2) bool {
	return pos.X <= 0 || pos.Y <= 0 || pos.X >= a.Width || pos.Y >= a.Height
}

// Start returns the start position and heading of a player slot
// Slots sit in the corners: 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right
// Left slots head right, right slots head left
func (a Arena) Start(slot int) (vmath.Vec2, vmath.Vec2) {
	if slot < 0 || slot >= constants.MaxPlayers {
		panic(fmt.Sprintf("arena: start for invalid slot %d", slot))
	}
	x, y := a.Inset, a.Inset
	heading := vmath.V(a.Unit, 0)
	if slot%2 == 1 {
		x = a.Width - a.Inset
		heading = heading.Neg()
	}
	if slot >= 2 {
		y = a.Height - a.Inset
	}
	return vmath.V(x, y), heading
}

// GameContext bundles the shared simulation services handed to every system
type GameContext struct {
	Arena     Arena
	Scheduler *ClockScheduler
	Events    *events.EventQueue
	Rand      *vmath.FastRand
}

// NewGameContext creates a context with a fresh scheduler and event queue
func NewGameContext(arena Arena, seed uint64) *GameContext {
	return &GameContext{
		Arena:     arena,
		Scheduler: NewClockScheduler(),
		Events:    events.NewEventQueue(),
		Rand:      vmath.NewFastRand(seed),
	}
}

// Emit queues an event stamped with the current tick and game time
func (ctx *GameContext) Emit(t events.EventType, payload any) {
	ctx.Events.Push(events.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   ctx.Scheduler.TickCount(),
		At:      ctx.Scheduler.Now(),
	})
}
