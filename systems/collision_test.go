package systems

import (
	"testing"

	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

func testArena(t *testing.T) engine.Arena {
	t.Helper()
	a, err := engine.NewArena(80, 24, 1, 44)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	return a
}

// readyCycle places a live cycle at pos and steps it n times
func readyCycle(slot int, pos, heading vmath.Vec2, n int) *components.Player {
	p := components.NewPlayer(slot, components.RoleReal, pos, heading)
	p.SetReady()
	for i := 0; i < n; i++ {
		p.Step()
	}
	return p
}

func TestCheckCrash(t *testing.T) {
	arena := testArena(t)
	rng := vmath.NewFastRand(1)

	right := vmath.V(1, 0)
	down := vmath.V(0, 1)
	up := vmath.V(0, -1)

	tests := []struct {
		name      string
		setup     func() (*components.Player, []*components.Player, *components.Blocker)
		wantCause events.CrashCause
		absorbed  bool
	}{
		{
			name: "open field",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				p := readyCycle(0, vmath.V(10, 10), right, 5)
				return p, []*components.Player{p}, nil
			},
			wantCause: events.CrashNone,
		},
		{
			name: "right wall",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				p := readyCycle(0, vmath.V(78, 5), right, 1)
				return p, []*components.Player{p}, nil
			},
			wantCause: events.CrashWall,
		},
		{
			name: "bottom wall",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				p := readyCycle(0, vmath.V(5, 20), down, 2)
				return p, []*components.Player{p}, nil
			},
			wantCause: events.CrashWall,
		},
		{
			name: "active blocker",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				b := components.NewBlocker(arena.Width, arena.Height, arena.Unit, rng)
				b.Pos = vmath.V(10, 5)
				b.Activate()
				p := readyCycle(0, vmath.V(7, 5), right, 2)
				return p, []*components.Player{p}, b
			},
			wantCause: events.CrashObstacle,
		},
		{
			name: "inactive blocker",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				b := components.NewBlocker(arena.Width, arena.Height, arena.Unit, rng)
				b.Pos = vmath.V(10, 5)
				p := readyCycle(0, vmath.V(7, 5), right, 3)
				return p, []*components.Player{p}, b
			},
			wantCause: events.CrashNone,
		},
		{
			name: "dragged blocker",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				b := components.NewBlocker(arena.Width, arena.Height, arena.Unit, rng)
				b.Pos = vmath.V(10, 5)
				b.Activate()
				b.PointerDown(0, vmath.V(10, 5))
				p := readyCycle(0, vmath.V(7, 5), right, 3)
				return p, []*components.Player{p}, b
			},
			wantCause: events.CrashNone,
		},
		{
			name: "other trail",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				wall := readyCycle(1, vmath.V(10, 10), down, 5)
				p := readyCycle(0, vmath.V(5, 12), right, 5)
				return p, []*components.Player{p, wall}, nil
			},
			wantCause: events.CrashTrail,
		},
		{
			name: "other head",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				other := readyCycle(1, vmath.V(20, 5), vmath.V(-1, 0), 5)
				p := readyCycle(0, vmath.V(5, 5), right, 10)
				return p, []*components.Player{p, other}, nil
			},
			wantCause: events.CrashTrail,
		},
		{
			name: "removed cycle trail ignored",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				readyCycle(1, vmath.V(10, 10), down, 5)
				p := readyCycle(0, vmath.V(5, 12), right, 5)
				return p, []*components.Player{p}, nil
			},
			wantCause: events.CrashNone,
		},
		{
			name: "shield absorbs first trail hit",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				wall := readyCycle(1, vmath.V(10, 10), down, 5)
				p := readyCycle(0, vmath.V(5, 12), right, 4)
				p.GrabShield(components.NewShield(arena.Width, arena.Height, arena.Unit, rng))
				p.Step()
				return p, []*components.Player{p, wall}, nil
			},
			wantCause: events.CrashNone,
			absorbed:  true,
		},
		{
			name: "second trail hit after absorb is fatal",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				upper := readyCycle(1, vmath.V(10, 10), down, 5)
				lower := readyCycle(2, vmath.V(10, 20), up, 5)
				p := readyCycle(0, vmath.V(5, 15), right, 4)
				p.GrabShield(components.NewShield(arena.Width, arena.Height, arena.Unit, rng))
				p.Step()
				return p, []*components.Player{p, upper, lower}, nil
			},
			wantCause: events.CrashTrail,
			absorbed:  true,
		},
		{
			name: "shield does not absorb walls",
			setup: func() (*components.Player, []*components.Player, *components.Blocker) {
				p := readyCycle(0, vmath.V(77, 5), right, 1)
				p.GrabShield(components.NewShield(arena.Width, arena.Height, arena.Unit, rng))
				p.Step()
				return p, []*components.Player{p}, nil
			},
			wantCause: events.CrashWall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, active, blocker := tt.setup()
			res := CheckCrash(arena, p, active, blocker)
			if res.Cause != tt.wantCause {
				t.Errorf("cause = %s, want %s", res.Cause, tt.wantCause)
			}
			if res.Absorbed != tt.absorbed {
				t.Errorf("absorbed = %v, want %v", res.Absorbed, tt.absorbed)
			}
			if res.Crashed() != (tt.wantCause != events.CrashNone) {
				t.Errorf("Crashed() = %v inconsistent with cause %s", res.Crashed(), res.Cause)
			}
			if tt.absorbed && p.Shield != nil {
				t.Error("shield still held after absorbing a hit")
			}
		})
	}
}

func TestCheckCrashOwnTrail(t *testing.T) {
	arena := testArena(t)

	// Box spiral: right 3, up 2, left 2, down 2 lands on the first segment
	p := readyCycle(0, vmath.V(10, 10), vmath.V(1, 0), 3)
	p.ChangeHeading(1)
	p.Step()
	p.Step()
	p.ChangeHeading(1)
	p.Step()
	p.Step()
	p.ChangeHeading(1)

	p.Step()
	if res := CheckCrash(arena, p, []*components.Player{p}, nil); res.Crashed() {
		t.Fatalf("crash at %v before reaching the first segment: %s", p.Pos, res.Cause)
	}

	p.Step()
	if p.Pos != vmath.V(11, 10) {
		t.Fatalf("pos = %v, want (11,10)", p.Pos)
	}
	if res := CheckCrash(arena, p, []*components.Player{p}, nil); res.Cause != events.CrashTrail {
		t.Errorf("cause = %s, want trail", res.Cause)
	}
}

func TestCheckShield(t *testing.T) {
	arena := testArena(t)
	rng := vmath.NewFastRand(1)

	newShield := func(active bool) *components.Shield {
		s := components.NewShield(arena.Width, arena.Height, arena.Unit, rng)
		s.Pos = vmath.V(12, 5)
		if active {
			s.Activate()
		}
		return s
	}

	tests := []struct {
		name   string
		role   components.PlayerRole
		active bool
		steps  int
		want   bool
	}{
		{"pickup on contact", components.RoleReal, true, 1, true},
		{"out of reach", components.RoleReal, true, 0, false},
		{"inactive shield", components.RoleReal, false, 1, false},
		{"scripted cycle", components.RoleScripted, true, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newShield(tt.active)
			p := components.NewPlayer(0, tt.role, vmath.V(10, 5), vmath.V(1, 0))
			p.SetReady()
			for i := 0; i < tt.steps; i++ {
				p.Step()
			}
			if got := CheckShield(p, s); got != tt.want {
				t.Fatalf("CheckShield = %v, want %v", got, tt.want)
			}
			if tt.want {
				if p.Shield != s || s.Owner() != 0 {
					t.Error("shield not attached to the cycle")
				}
				p.Step()
				if s.Pos != p.Pos {
					t.Errorf("held shield at %v, cycle at %v", s.Pos, p.Pos)
				}
				if CheckShield(p, s) {
					t.Error("second pickup of a held shield")
				}
			}
		})
	}
}
