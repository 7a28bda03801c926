package renderers

import (
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
)

// BackgroundRenderer draws the wandering crosshairs as faint lines across the arena
type BackgroundRenderer struct {
	bg *systems.BackgroundSystem
}

// NewBackgroundRenderer creates the crosshair renderer
func NewBackgroundRenderer(bg *systems.BackgroundSystem) *BackgroundRenderer {
	return &BackgroundRenderer{bg: bg}
}

// Render draws one horizontal and one vertical line through every crosshair
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := ctx.Arena.Width, ctx.Arena.Height
	line := render.Fg(render.RgbGrid)
	center := render.Fg(render.RgbCrosshair)

	for _, c := range r.bg.Crosshairs() {
		for x := 1; x < w; x++ {
			if sx, sy, ok := ctx.MapToScreen(x, c.Pos.Y); ok {
				buf.Set(sx, sy, '·', line)
			}
		}
		for y := 1; y < h; y++ {
			if sx, sy, ok := ctx.MapToScreen(c.Pos.X, y); ok {
				buf.Set(sx, sy, '·', line)
			}
		}
	}
	for _, c := range r.bg.Crosshairs() {
		if sx, sy, ok := ctx.MapToScreen(c.Pos.X, c.Pos.Y); ok {
			buf.Set(sx, sy, '+', center)
		}
	}
}
