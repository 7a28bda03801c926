package renderers

import (
	"fmt"

	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
)

// WinsRenderer draws the wins board between rounds
type WinsRenderer struct {
	match   *systems.MatchSystem
	attract *systems.AttractSystem
}

// NewWinsRenderer creates the wins board renderer
func NewWinsRenderer(match *systems.MatchSystem, attract *systems.AttractSystem) *WinsRenderer {
	return &WinsRenderer{match: match, attract: attract}
}

// IsVisible shows the board until the first join of the next round
func (r *WinsRenderer) IsVisible() bool {
	return r.match.WinsShown() && !r.attract.Running()
}

// Render draws one row per slot: label, a pip per win up to the target, and the count
func (r *WinsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	target := r.match.WinTarget()
	c := ctx.Arena.Center()
	width := 4 + 2*target + 4
	x0 := c.X - width/2
	y0 := c.Y + 1

	for slot, p := range r.match.Players {
		sx, sy, ok := ctx.MapToScreen(x0, y0+slot)
		if !ok {
			continue
		}
		color := render.PlayerColor(slot)
		x := sx + buf.SetString(sx, sy, fmt.Sprintf("P%d  ", slot+1), render.Fg(color).Bold(true))

		wins := p.Wins.Count()
		for i := 0; i < target; i++ {
			if i < wins {
				buf.Set(x, sy, '■', render.Fg(color))
			} else {
				buf.Set(x, sy, '□', render.Fg(render.RgbDimText))
			}
			x += 2
		}
		style := render.Fg(render.RgbText)
		if wins >= target {
			style = render.Fg(render.RgbStatusAccent).Bold(true)
		}
		buf.SetString(x+1, sy, fmt.Sprintf("%d", wins), style)
	}
}
