package systems

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/troff/asset"
	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

func builtinScript(t *testing.T) DemoScript {
	t.Helper()
	var script DemoScript
	if _, err := toml.Decode(asset.IdleDemoScript, &script); err != nil {
		t.Fatalf("decode built-in script: %v", err)
	}
	return script
}

func TestAttractLayout(t *testing.T) {
	ctx := testContext(t)
	s := NewAttractSystem(ctx, builtinScript(t))

	center := ctx.Arena.Center()
	if center != vmath.V(39, 11) {
		t.Fatalf("center = %v, want (39,11)", center)
	}

	if got := s.Routes()[0].StartPos; got != vmath.V(9, 19) {
		t.Errorf("route 0 start = %v, want center offset (9,19)", got)
	}
	for i, r := range s.Routes() {
		if r.StartHeading != vmath.V(0, -1) {
			t.Errorf("route %d heading = %v, want up", i, r.StartHeading)
		}
		if r.Role != components.RoleScripted {
			t.Errorf("route %d is not scripted", i)
		}
	}

	about := s.About()
	if len(about) != 2 {
		t.Fatalf("about boxes = %d, want 2", len(about))
	}
	// First box top at center.Y - Height/4 = 6, bottom-left start two rows lower
	if about[0].StartPos.Y != 8 {
		t.Errorf("first box start y = %d, want 8", about[0].StartPos.Y)
	}
	_, h := about[0].Size()
	if gap := about[1].StartPos.Y - about[0].StartPos.Y; gap != h+constants.AboutSpacing {
		t.Errorf("box spacing = %d, want %d", gap, h+constants.AboutSpacing)
	}
	for i, a := range about {
		w, _ := a.Size()
		left := a.StartPos.X
		if d := (center.X - left) - (left + w - center.X); d < -1 || d > 1 {
			t.Errorf("box %d spans %d..%d, not centered on %d", i, left, left+w, center.X)
		}
	}
}

func TestAttractDemoLifecycle(t *testing.T) {
	ctx := testContext(t)
	s := NewAttractSystem(ctx, builtinScript(t))

	s.ArmIdle()
	if !s.IdleArmed() {
		t.Fatal("idle timer not armed")
	}

	s.StartDemo()
	if !s.Running() || s.IdleArmed() {
		t.Fatalf("Running = %v IdleArmed = %v after StartDemo", s.Running(), s.IdleArmed())
	}
	for i, r := range s.Routes() {
		if !r.Running() {
			t.Errorf("route %d not running", i)
		}
	}
	for i, a := range s.About() {
		if !a.TextVisible {
			t.Errorf("about %d text hidden", i)
		}
	}
	if _, ok := findEvent(ctx.Events.Consume(), events.EventDemoStarted); !ok {
		t.Error("EventDemoStarted not emitted")
	}

	start := s.Routes()[0].Pos
	tick(ctx, 3)
	if got := s.Routes()[0].Pos; got != start.Add(vmath.V(0, -3)) {
		t.Errorf("route 0 at %v after 3 ticks, want 3 cells above %v", got, start)
	}

	s.StopDemo()
	if s.Running() || !s.IdleArmed() {
		t.Fatalf("Running = %v IdleArmed = %v after StopDemo", s.Running(), s.IdleArmed())
	}
	for i, r := range s.Routes() {
		if r.Running() || r.State != components.PlayerIdle {
			t.Errorf("route %d still on the field", i)
		}
	}
	for i, a := range s.About() {
		if a.TextVisible {
			t.Errorf("about %d text still visible", i)
		}
	}
	if _, ok := findEvent(ctx.Events.Consume(), events.EventDemoStopped); !ok {
		t.Error("EventDemoStopped not emitted")
	}

	pos := s.Routes()[0].Pos
	tick(ctx, 3)
	if s.Routes()[0].Pos != pos {
		t.Error("stopped demo kept advancing")
	}
}

func TestAttractLoopsRoutes(t *testing.T) {
	ctx := testContext(t)
	s := NewAttractSystem(ctx, builtinScript(t))
	s.StartDemo()

	// Route 2 is 27 steps; it must die and come back within the respawn window
	r := s.Routes()[2]
	died := false
	for i := 0; i < 200; i++ {
		tick(ctx, 1)
		if r.State == components.PlayerDying {
			died = true
		}
		if died && r.Running() {
			return
		}
	}
	t.Fatalf("route 2 died=%v but never restarted", died)
}

func TestAttractMisuse(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *AttractSystem)
	}{
		{"arm twice", func(s *AttractSystem) { s.ArmIdle(); s.ArmIdle() }},
		{"disarm unarmed", func(s *AttractSystem) { s.DisarmIdle() }},
		{"start twice", func(s *AttractSystem) { s.StartDemo(); s.StartDemo() }},
		{"stop idle", func(s *AttractSystem) { s.StopDemo() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAttractSystem(testContext(t), DemoScript{})
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run(s)
		})
	}
}

func TestAttractClampsSlots(t *testing.T) {
	ctx := testContext(t)
	s := NewAttractSystem(ctx, DemoScript{
		Routes: []RouteRecord{{Slot: 9, Route: [][2]int{{1, 0}}}},
		About:  []AboutRecord{{Slot: -1, Text: "x"}},
	})
	if s.Routes()[0].Slot != 0 || s.About()[0].Slot != 0 {
		t.Errorf("slots = %d, %d, want both clamped to 0", s.Routes()[0].Slot, s.About()[0].Slot)
	}
}

func TestAttractIdleTimeout(t *testing.T) {
	ctx := testContext(t)
	s := NewAttractSystem(ctx, DemoScript{})
	s.SetIdleTimeout(time.Second)
	s.ArmIdle()

	ctx.Scheduler.Advance(999 * time.Millisecond)
	if s.Running() {
		t.Fatal("demo started before the idle timeout")
	}
	ctx.Scheduler.Advance(time.Millisecond)
	if !s.Running() {
		t.Fatal("demo not started at the idle timeout")
	}

	defer func() {
		if recover() == nil {
			t.Error("zero idle timeout accepted")
		}
	}()
	s.SetIdleTimeout(0)
}
