package renderers

import (
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
)

// AboutRenderer draws the text boxed in by the demo's about cycles
type AboutRenderer struct {
	attract *systems.AttractSystem
}

// NewAboutRenderer creates the about text renderer
func NewAboutRenderer(attract *systems.AttractSystem) *AboutRenderer {
	return &AboutRenderer{attract: attract}
}

// IsVisible shows about text only during the demo
func (r *AboutRenderer) IsVisible() bool {
	return r.attract.Running()
}

// Render draws each visible about line in its cycle's color
func (r *AboutRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, a := range r.attract.About() {
		if !a.TextVisible {
			continue
		}
		if sx, sy, ok := ctx.MapToScreen(a.TextPos.X, a.TextPos.Y); ok {
			buf.SetString(sx, sy, a.Text, render.Fg(render.PlayerColor(a.Slot)).Bold(true))
		}
	}
}
