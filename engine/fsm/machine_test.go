package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/troff/events"
)

type testCtx struct {
	log     []string
	allowGo bool
}

const testGraph = `
initial = "Idle"

[states.Waiting]
on_enter = [{ action = "Log", event = "" }]
on_exit = [{ action = "Log" }]

[states.Idle]
parent = "Waiting"
on_enter = [{ action = "Log" }]
transitions = [
    { trigger = "EventStartRequest", target = "Busy", guard = "AllowGo" },
]

[states.Busy]
on_enter = [{ action = "EmitEvent", event = "EventCountdownGreen" }]
on_update = [{ action = "Log" }]
transitions = [
    { trigger = "Tick", target = "Idle", guard = "StateTimeExceeds", guard_args = { ms = 100 } },
]

[states.Root]
transitions = [
    { trigger = "EventRoundReset", target = "Idle" },
]
`

func newTestMachine(t *testing.T) (*Machine[*testCtx], *testCtx) {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterAction("Log", func(ctx *testCtx, args any) {
		ctx.log = append(ctx.log, "log")
	})
	m.RegisterAction("EmitEvent", func(ctx *testCtx, args any) {
		ctx.log = append(ctx.log, "emit:"+args.(*EmitEventArgs).Type.String())
	})
	m.RegisterGuard("AllowGo", func(ctx *testCtx) bool { return ctx.allowGo })

	if err := m.LoadConfig([]byte(testGraph)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ctx := &testCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, ctx
}

func TestMachineInitEntersPath(t *testing.T) {
	m, ctx := newTestMachine(t)

	if m.CurrentState() != "Idle" {
		t.Errorf("CurrentState() = %q, want Idle", m.CurrentState())
	}
	if !m.InState("Waiting") || !m.InState("Root") || m.InState("Busy") {
		t.Error("InState does not follow the active path")
	}
	// Waiting then Idle on_enter
	if len(ctx.log) != 2 {
		t.Errorf("log = %v, want two enter actions", ctx.log)
	}
}

func TestMachineGuardedTransition(t *testing.T) {
	m, ctx := newTestMachine(t)
	ctx.log = nil

	if m.HandleEvent(ctx, events.EventStartRequest) {
		t.Fatal("transition taken while guard is false")
	}
	if m.HandleEvent(ctx, events.EventNone) {
		t.Fatal("EventNone must never trigger a transition")
	}

	ctx.allowGo = true
	if !m.HandleEvent(ctx, events.EventStartRequest) {
		t.Fatal("transition not taken")
	}
	if m.CurrentState() != "Busy" {
		t.Fatalf("CurrentState() = %q, want Busy", m.CurrentState())
	}

	want := []string{"log", "emit:EventCountdownGreen"} // exit Waiting, enter Busy
	if strings.Join(ctx.log, ",") != strings.Join(want, ",") {
		t.Errorf("log = %v, want %v", ctx.log, want)
	}
}

func TestMachineTickTransitionWithStateTime(t *testing.T) {
	m, ctx := newTestMachine(t)
	ctx.allowGo = true
	m.HandleEvent(ctx, events.EventStartRequest)

	m.Update(ctx, 60*time.Millisecond)
	if m.CurrentState() != "Busy" {
		t.Fatalf("left Busy after %v", m.TimeInState())
	}
	m.Update(ctx, 60*time.Millisecond)
	if m.CurrentState() != "Idle" {
		t.Fatalf("CurrentState() = %q, want Idle after 120ms", m.CurrentState())
	}
	if m.TimeInState() != 0 {
		t.Errorf("TimeInState() = %v after transition, want 0", m.TimeInState())
	}
}

func TestMachineRootTransitionBubbles(t *testing.T) {
	m, ctx := newTestMachine(t)
	ctx.allowGo = true
	m.HandleEvent(ctx, events.EventStartRequest)

	if !m.HandleEvent(ctx, events.EventRoundReset) {
		t.Fatal("root transition not taken from Busy")
	}
	if m.CurrentState() != "Idle" {
		t.Errorf("CurrentState() = %q, want Idle", m.CurrentState())
	}
}

func TestMachineSelfTransitionReenters(t *testing.T) {
	m, ctx := newTestMachine(t)
	ctx.log = nil

	// Root transition targets Idle while Idle is active
	m.HandleEvent(ctx, events.EventRoundReset)
	if len(ctx.log) != 1 {
		t.Errorf("self transition ran %v, want only Idle re-entry", ctx.log)
	}
}

func TestMachineReset(t *testing.T) {
	m, ctx := newTestMachine(t)
	ctx.allowGo = true
	m.HandleEvent(ctx, events.EventStartRequest)

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.CurrentState() != "Idle" {
		t.Errorf("CurrentState() = %q after Reset, want Idle", m.CurrentState())
	}
}

func TestMachineEventDuringTransitionPanics(t *testing.T) {
	m := NewMachine[*testCtx]()
	m.RegisterAction("Reenter", func(ctx *testCtx, args any) {
		m.HandleEvent(ctx, events.EventRoundReset)
	})
	graph := `
initial = "A"
[states.A]
transitions = [{ trigger = "EventStartRequest", target = "B" }]
[states.B]
on_enter = [{ action = "Reenter" }]
`
	if err := m.LoadConfig([]byte(graph)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ctx := &testCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on re-entrant event")
		}
	}()
	m.HandleEvent(ctx, events.EventStartRequest)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  string
	}{
		{"bad toml", `initial = `, "unmarshal"},
		{"unknown key", "initial = \"A\"\nbogus = 1\n[states.A]\n", "unknown FSM config keys"},
		{"missing initial", "initial = \"Nope\"\n[states.A]\n", "initial state"},
		{"unknown parent", "initial = \"A\"\n[states.A]\nparent = \"Z\"\n", "unknown parent"},
		{"unknown action", "initial = \"A\"\n[states.A]\non_enter = [{ action = \"Nope\" }]\n", "unknown action"},
		{"unknown event", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventNope\", target = \"A\" }]\n", "unknown event"},
		{"unknown target", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Tick\", target = \"Z\" }]\n", "unknown target"},
		{"unknown guard", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Tick\", target = \"A\", guard = \"Nope\" }]\n", "unknown guard"},
		{"guard args missing", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Tick\", target = \"A\", guard = \"StateTimeExceeds\" }]\n", "requires 'ms'"},
		{"emit without event", "initial = \"A\"\n[states.A]\non_enter = [{ action = \"EmitEvent\" }]\n", "requires 'event'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*testCtx]()
			m.RegisterAction("EmitEvent", func(*testCtx, any) {})
			err := m.LoadConfig([]byte(tt.graph))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCompilePathsDetectsMissingParent(t *testing.T) {
	m := NewMachine[*testCtx]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(5, "Orphan", 9)
	if err := m.CompilePaths(); err == nil {
		t.Error("expected missing parent error")
	}
}
