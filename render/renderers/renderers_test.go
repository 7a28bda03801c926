package renderers

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/troff/asset"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
	"github.com/lixenwraith/troff/vmath"
)

type fixture struct {
	ctx     *engine.GameContext
	match   *systems.MatchSystem
	attract *systems.AttractSystem
	buf     *render.RenderBuffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	arena, err := engine.NewArena(80, 24, 1, constants.MaxStartInset)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	ctx := engine.NewGameContext(arena, 7)

	var script systems.DemoScript
	if _, err := toml.Decode(asset.IdleDemoScript, &script); err != nil {
		t.Fatalf("decode script: %v", err)
	}
	attract := systems.NewAttractSystem(ctx, script)
	match, err := systems.NewMatchSystem(ctx, attract, asset.MatchFSMConfig, 0)
	if err != nil {
		t.Fatalf("NewMatchSystem: %v", err)
	}
	match.Blocker.Pos = vmath.V(40, 11)
	match.Shield.Pos = vmath.V(60, 11)

	return &fixture{ctx: ctx, match: match, attract: attract, buf: render.NewRenderBuffer(80, 24)}
}

func (f *fixture) renderCtx() render.RenderContext {
	return render.NewRenderContext(f.ctx, 80, 24)
}

func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.ctx.Scheduler.Tick(constants.GameUpdateInterval)
	}
}

func (f *fixture) row(y int) string {
	var sb strings.Builder
	for x := 0; x < 80; x++ {
		r := f.buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestArenaRenderer(t *testing.T) {
	f := newFixture(t)
	NewArenaRenderer().Render(f.renderCtx(), f.buf)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '╔'},
		{79, 0, '╗'},
		{0, 22, '╚'},
		{79, 22, '╝'},
		{40, 0, '═'},
		{0, 10, '║'},
		{40, 10, ' '},
	}
	for _, tt := range tests {
		if got := f.buf.Get(tt.x, tt.y).Rune; got != tt.want {
			t.Errorf("cell %d,%d = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCycleRendererMatchAndDemo(t *testing.T) {
	f := newFixture(t)
	r := NewCycleRenderer(f.match, f.attract)

	f.match.Join(0)
	f.match.Join(1)
	f.match.Start()
	f.tick(40)
	if !f.match.InPhase(systems.StateActive) {
		t.Fatalf("phase = %s, want Active", f.match.Phase())
	}
	f.tick(3)

	r.Render(f.renderCtx(), f.buf)
	p := f.match.Players[0]
	head := f.buf.Get(p.Pos.X, p.Pos.Y)
	if head.Rune != '●' {
		t.Errorf("head cell = %q, want ●", head.Rune)
	}
	fg, _, _ := head.Style.Decompose()
	if fg != render.PlayerColor(0) {
		t.Errorf("head color = %v, want slot 0 color", fg)
	}
	if got := f.buf.Get(p.StartPos.X, p.StartPos.Y).Rune; got != '─' {
		t.Errorf("trail cell = %q, want ─", got)
	}
	if got := f.buf.Get(f.match.Players[2].StartPos.X, f.match.Players[2].StartPos.Y).Rune; got != ' ' {
		t.Errorf("unjoined slot drawn: %q", got)
	}
}

func TestCycleRendererDemoHidesMatch(t *testing.T) {
	f := newFixture(t)
	r := NewCycleRenderer(f.match, f.attract)

	f.attract.StartDemo()
	f.tick(2)
	r.Render(f.renderCtx(), f.buf)

	s := f.attract.Routes()[0]
	if got := f.buf.Get(s.Pos.X, s.Pos.Y).Rune; got != '●' {
		t.Errorf("scripted head = %q, want ●", got)
	}
}

func TestItemsRendererVisibility(t *testing.T) {
	f := newFixture(t)
	r := NewItemsRenderer(f.match, f.attract)

	if !r.IsVisible() {
		t.Fatal("items hidden in the lobby")
	}
	r.Render(f.renderCtx(), f.buf)
	if got := f.buf.Get(40, 11).Rune; got != '▓' {
		t.Errorf("blocker center = %q, want ▓", got)
	}
	if got := f.buf.Get(60, 11).Rune; got != '◆' {
		t.Errorf("shield center = %q, want ◆", got)
	}
	if got := f.buf.Get(61, 12).Rune; got != '░' {
		t.Errorf("shield edge = %q, want ░", got)
	}

	f.attract.StartDemo()
	if r.IsVisible() {
		t.Error("items visible during the demo")
	}
}

func TestCountdownRenderer(t *testing.T) {
	f := newFixture(t)
	r := NewCountdownRenderer(f.match)
	if r.IsVisible() {
		t.Fatal("lights visible in the lobby")
	}

	f.match.Join(0)
	f.match.Join(1)
	f.match.Start()
	if !r.IsVisible() {
		t.Fatal("lights hidden on red")
	}
	r.Render(f.renderCtx(), f.buf)

	c := f.ctx.Arena.Center()
	red, _, _ := f.buf.Get(c.X-4, c.Y-2).Style.Decompose()
	green, _, _ := f.buf.Get(c.X+4, c.Y-2).Style.Decompose()
	if red != render.RgbLightRed || green != render.RgbLightOff {
		t.Errorf("lights on red = %v / %v", red, green)
	}
}

func TestStatusRendererHints(t *testing.T) {
	f := newFixture(t)
	r := NewStatusRenderer(f.match, f.attract)

	if got := r.Hint(); got != "1-4 join" {
		t.Errorf("lobby hint = %q", got)
	}
	f.match.Join(0)
	f.match.Join(1)
	if got := r.Hint(); got != "enter starts, 1-4 join" {
		t.Errorf("armed hint = %q", got)
	}

	muted := true
	r.Muted = func() bool { return muted }
	r.Render(f.renderCtx(), f.buf)
	line := f.row(23)
	for _, want := range []string{"TROFF", "[1]", "[4]", "enter starts", "(muted)"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}

func TestBannerRenderer(t *testing.T) {
	f := newFixture(t)
	r := NewBannerRenderer()

	r.HandleEvent(f.ctx, events.GameEvent{
		Type:    events.EventRoundDecided,
		Payload: &events.RoundPayload{Winner: 2, Wins: 1},
		At:      1000,
	})
	if got := r.Text(1000); got != "PLAYER 3 WINS" {
		t.Errorf("banner = %q", got)
	}
	if got := r.Text(1000 + constants.RoundEndDelay); got != "" {
		t.Errorf("banner after the round end delay = %q", got)
	}

	r.HandleEvent(f.ctx, events.GameEvent{Type: events.EventRoundDecided, Payload: &events.RoundPayload{Winner: -1}})
	if got := r.Text(0); got != "DRAW" {
		t.Errorf("draw banner = %q", got)
	}

	r.HandleEvent(f.ctx, events.GameEvent{Type: events.EventClearOffered})
	if got := r.Text(constants.RoundEndDelay * 100); got != "MATCH OVER" {
		t.Errorf("clear offer banner = %q", got)
	}
	r.HandleEvent(f.ctx, events.GameEvent{Type: events.EventPlayerJoined})
	if got := r.Text(0); got != "" {
		t.Errorf("banner after join = %q", got)
	}
}

func TestWinsRenderer(t *testing.T) {
	f := newFixture(t)
	r := NewWinsRenderer(f.match, f.attract)
	if r.IsVisible() {
		t.Fatal("wins board visible before any round")
	}

	f.match.Join(0)
	f.match.Join(2)
	f.match.Start()
	f.tick(40)
	f.match.Turn(2, -1)
	f.tick(5 + int(constants.RoundEndDelay/constants.GameUpdateInterval))

	if !r.IsVisible() {
		t.Fatalf("wins board hidden after the round, phase %s", f.match.Phase())
	}
	r.Render(f.renderCtx(), f.buf)

	c := f.ctx.Arena.Center()
	line := f.row(c.Y + 1)
	if !strings.Contains(line, "P1") || !strings.Contains(line, "■") {
		t.Errorf("slot 0 row %q missing label or win pip", line)
	}
	if strings.Contains(f.row(c.Y+3), "■") {
		t.Errorf("slot 2 row shows a win: %q", f.row(c.Y+3))
	}
}

func TestAboutRenderer(t *testing.T) {
	f := newFixture(t)
	r := NewAboutRenderer(f.attract)
	if r.IsVisible() {
		t.Fatal("about text visible outside the demo")
	}
	f.attract.StartDemo()
	r.Render(f.renderCtx(), f.buf)

	a := f.attract.About()[0]
	if !strings.Contains(f.row(a.TextPos.Y), a.Text) {
		t.Errorf("row %d = %q, want %q", a.TextPos.Y, f.row(a.TextPos.Y), a.Text)
	}
}

func TestBackgroundRenderer(t *testing.T) {
	f := newFixture(t)
	bg := systems.NewBackgroundSystem(f.ctx)
	NewBackgroundRenderer(bg).Render(f.renderCtx(), f.buf)

	c := f.ctx.Arena.Center()
	if got := f.buf.Get(c.X, c.Y).Rune; got != '+' {
		t.Errorf("crosshair center = %q, want +", got)
	}
	if got := f.buf.Get(1, c.Y).Rune; got != '·' {
		t.Errorf("crosshair line = %q, want ·", got)
	}
}
