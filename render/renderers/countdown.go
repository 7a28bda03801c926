package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
)

// CountdownRenderer draws the start lights: red, red and yellow, then green
type CountdownRenderer struct {
	match *systems.MatchSystem
}

// NewCountdownRenderer creates the start light renderer
func NewCountdownRenderer(match *systems.MatchSystem) *CountdownRenderer {
	return &CountdownRenderer{match: match}
}

// IsVisible shows the lights from red until the round is running
func (r *CountdownRenderer) IsVisible() bool {
	return r.match.InPhase(systems.StateCountdown) || r.match.Phase() == systems.StateGreen
}

// Render draws three lights centered above the middle of the arena
func (r *CountdownRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	phase := r.match.Phase()
	lights := [3]tcell.Color{render.RgbLightOff, render.RgbLightOff, render.RgbLightOff}
	switch phase {
	case systems.StateRed:
		lights[0] = render.RgbLightRed
	case systems.StateYellow:
		lights[0] = render.RgbLightRed
		lights[1] = render.RgbLightYellow
	case systems.StateGreen:
		lights[2] = render.RgbLightGreen
	}

	c := ctx.Arena.Center()
	for i, color := range lights {
		x := c.X + (i-1)*4
		if sx, sy, ok := ctx.MapToScreen(x, c.Y-2); ok {
			buf.Set(sx, sy, '●', render.Fg(color).Bold(true))
		}
	}
}
