package systems

import (
	"time"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/vmath"
)

// Crosshair is one wandering background marker
type Crosshair struct {
	Pos       vmath.Vec2
	Heading   vmath.Vec2
	countdown int
}

// BackgroundSystem moves the decorative crosshairs drawn behind the arena
// Each crosshair turns to a random perpendicular heading every BackgroundTurnMin..Max ticks
// and reverses when it reaches an edge
type BackgroundSystem struct {
	arena engine.Arena
	rng   *vmath.FastRand
	marks []Crosshair
}

// NewBackgroundSystem places all crosshairs at the arena center with random headings
// The crosshairs draw from their own generator, seeded once from the context
func NewBackgroundSystem(ctx *engine.GameContext) *BackgroundSystem {
	s := &BackgroundSystem{
		arena: ctx.Arena,
		rng:   vmath.NewFastRand(ctx.Rand.Next()),
		marks: make([]Crosshair, constants.BackgroundAnimCount),
	}
	for i := range s.marks {
		m := &s.marks[i]
		m.Pos = ctx.Arena.Center()
		dx := s.rng.IntRange(-1, 1)
		if dx == 0 {
			m.Heading = vmath.V(0, s.rng.Sign())
		} else {
			m.Heading = vmath.V(dx, 0)
		}
		m.countdown = s.nextCountdown()
	}
	return s
}

func (s *BackgroundSystem) nextCountdown() int {
	return s.rng.IntRange(constants.BackgroundTurnMin, constants.BackgroundTurnMax)
}

// Update moves every crosshair one cell; registered as a frame handler
func (s *BackgroundSystem) Update(time.Duration) {
	for i := range s.marks {
		m := &s.marks[i]
		if m.countdown == 0 {
			m.countdown = s.nextCountdown()
			if m.Heading.X == 0 {
				m.Heading = vmath.V(s.rng.Sign(), 0)
			} else {
				m.Heading = vmath.V(0, s.rng.Sign())
			}
		} else {
			m.countdown--
		}

		m.Pos = m.Pos.Add(m.Heading)
		if s.arena.OnWall(m.Pos) {
			m.Heading = m.Heading.Neg()
			m.Pos = m.Pos.Add(m.Heading)
		}
	}
}

// Crosshairs returns the current marker positions
func (s *BackgroundSystem) Crosshairs() []Crosshair {
	return s.marks
}
