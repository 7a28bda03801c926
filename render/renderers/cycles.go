package renderers

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
	"github.com/lixenwraith/troff/vmath"
)

// CycleRenderer draws trails, heads and death effects
// While the demo runs only scripted cycles are drawn, otherwise only match cycles
type CycleRenderer struct {
	match   *systems.MatchSystem
	attract *systems.AttractSystem
}

// NewCycleRenderer creates the trail renderer
func NewCycleRenderer(match *systems.MatchSystem, attract *systems.AttractSystem) *CycleRenderer {
	return &CycleRenderer{match: match, attract: attract}
}

// Render draws every visible cycle
func (r *CycleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if r.attract.Running() {
		for _, s := range r.attract.Routes() {
			drawCycle(ctx, buf, s.Player)
		}
		for _, a := range r.attract.About() {
			drawCycle(ctx, buf, a.Player)
		}
		return
	}
	for _, p := range r.match.Players {
		drawCycle(ctx, buf, p)
	}
}

func drawCycle(ctx render.RenderContext, buf *render.RenderBuffer, p *components.Player) {
	if p.State == components.PlayerIdle {
		return
	}

	color := render.PlayerColor(p.Slot)
	if p.State == components.PlayerDying {
		// Trail fades out once the explosion is over
		elapsed := ctx.Now - p.DyingSince
		if elapsed > constants.ExplodeDuration {
			fade := float64(elapsed-constants.ExplodeDuration) / float64(constants.FadeDuration)
			color = render.Blend(color, render.RgbBackground, fade)
		}
	}
	style := render.Fg(color)

	for i := p.Trail.Len() - 1; i >= 0; i-- {
		drawSegment(ctx, buf, p.Trail.At(i), style)
	}

	switch {
	case p.State == components.PlayerReady:
		head := '●'
		if p.Shield != nil {
			head = '◉'
		}
		if sx, sy, ok := ctx.MapToScreen(p.Pos.X, p.Pos.Y); ok {
			buf.Set(sx, sy, head, style.Bold(true))
		}
	case p.Exploding && ctx.Now-p.DyingSince <= constants.ExplodeDuration:
		drawExplosion(ctx, buf, p.Pos, ctx.Now-p.DyingSince)
	}
}

// drawSegment fills every cell between the canonical endpoints
func drawSegment(ctx render.RenderContext, buf *render.RenderBuffer, seg components.Segment, style tcell.Style) {
	ch := '│'
	if seg.Start.Y == seg.End.Y && seg.Start.X != seg.End.X {
		ch = '─'
	}
	for y := seg.Start.Y; y <= seg.End.Y; y++ {
		for x := seg.Start.X; x <= seg.End.X; x++ {
			if sx, sy, ok := ctx.MapToScreen(x, y); ok {
				buf.Set(sx, sy, ch, style)
			}
		}
	}
}

var explosionFrames = []rune{'*', '✶', '✹', '·'}

// drawExplosion draws a ring growing with elapsed over the explosion duration
func drawExplosion(ctx render.RenderContext, buf *render.RenderBuffer, pos vmath.Vec2, elapsed time.Duration) {
	t := elapsed.Seconds() / constants.ExplodeDuration.Seconds()
	if t > 1 {
		t = 1
	}
	frame := int(t * float64(len(explosionFrames)-1))
	radius := 1 + int(t*2)
	style := render.Fg(render.RgbExplosion).Bold(true)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if vmath.AbsInt(dx) != radius && vmath.AbsInt(dy) != radius && (dx != 0 || dy != 0) {
				continue
			}
			p := pos.Add(vmath.V(dx*2, dy))
			if ctx.Arena.OnWall(p) {
				continue
			}
			if sx, sy, ok := ctx.MapToScreen(p.X, p.Y); ok {
				buf.Set(sx, sy, explosionFrames[frame], style)
			}
		}
	}
}
