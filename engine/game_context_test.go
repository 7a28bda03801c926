package engine

import (
	"testing"

	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		unit       int
		inset      int
		wantW      int
		wantH      int
		wantInset  int
		wantErr    bool
	}{
		{"standard terminal", 80, 24, 1, 44, 79, 22, 5, false},
		{"large terminal keeps inset", 400, 200, 1, 44, 399, 198, 44, false},
		{"unit two floors sizes", 81, 25, 2, 44, 80, 22, 4, false},
		{"too small", 10, 8, 1, 44, 0, 0, 0, true},
		{"zero unit", 80, 24, 0, 44, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(tt.cols, tt.rows, tt.unit, tt.inset)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", a)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Width != tt.wantW || a.Height != tt.wantH || a.Inset != tt.wantInset {
				t.Errorf("arena = %+v, want W=%d H=%d inset=%d", a, tt.wantW, tt.wantH, tt.wantInset)
			}
		})
	}
}

func TestArenaStart(t *testing.T) {
	a := Arena{Width: 100, Height: 60, Unit: 2, Inset: 10}

	tests := []struct {
		slot    int
		pos     vmath.Vec2
		heading vmath.Vec2
	}{
		{0, vmath.V(10, 10), vmath.V(2, 0)},
		{1, vmath.V(90, 10), vmath.V(-2, 0)},
		{2, vmath.V(10, 50), vmath.V(2, 0)},
		{3, vmath.V(90, 50), vmath.V(-2, 0)},
	}

	for _, tt := range tests {
		pos, heading := a.Start(tt.slot)
		if pos != tt.pos || heading != tt.heading {
			t.Errorf("Start(%d) = %v %v, want %v %v", tt.slot, pos, heading, tt.pos, tt.heading)
		}
		if a.OnWall(pos) {
			t.Errorf("slot %d starts on the wall", tt.slot)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for slot 4")
		}
	}()
	a.Start(4)
}

func TestArenaOnWall(t *testing.T) {
	a := Arena{Width: 20, Height: 10, Unit: 1}
	tests := []struct {
		pos  vmath.Vec2
		want bool
	}{
		{vmath.V(0, 5), true},
		{vmath.V(20, 5), true},
		{vmath.V(5, 0), true},
		{vmath.V(5, 10), true},
		{vmath.V(1, 1), false},
		{vmath.V(19, 9), false},
	}
	for _, tt := range tests {
		if got := a.OnWall(tt.pos); got != tt.want {
			t.Errorf("OnWall(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestGameContextEmit(t *testing.T) {
	ctx := NewGameContext(Arena{Width: 20, Height: 10, Unit: 1}, 7)
	ctx.Scheduler.Tick(50_000_000)
	ctx.Emit(events.EventPlayerJoined, &events.PlayerPayload{Slot: 2})

	got := ctx.Events.Consume()
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	ev := got[0]
	if ev.Type != events.EventPlayerJoined || ev.Frame != 1 || ev.At != ctx.Scheduler.Now() {
		t.Errorf("event = %+v", ev)
	}
	if p, ok := ev.Payload.(*events.PlayerPayload); !ok || p.Slot != 2 {
		t.Errorf("payload = %#v", ev.Payload)
	}
}
