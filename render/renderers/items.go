package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
	"github.com/lixenwraith/troff/vmath"
)

// ItemsRenderer draws the blocker and the free shield
// Active items blink; inactive ones are drawn dim so they can still be dragged into place
type ItemsRenderer struct {
	match   *systems.MatchSystem
	attract *systems.AttractSystem
}

// NewItemsRenderer creates the item renderer
func NewItemsRenderer(match *systems.MatchSystem, attract *systems.AttractSystem) *ItemsRenderer {
	return &ItemsRenderer{match: match, attract: attract}
}

// IsVisible hides the match items during the demo
func (r *ItemsRenderer) IsVisible() bool {
	return !r.attract.Running()
}

// Render draws both items
func (r *ItemsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	on := ctx.Blink(constants.ItemFlashPeriod)

	b := r.match.Blocker
	drawItem(ctx, buf, &b.DragItem, '▓', '▓', itemColor(b.Active, on, render.RgbBlocker, render.RgbBlockerDim))

	s := r.match.Shield
	if !s.Grabbed() {
		drawItem(ctx, buf, &s.DragItem, '░', '◆', itemColor(s.Active, on, render.RgbShield, render.RgbShieldDim))
	}
}

func itemColor(active, on bool, bright, dim tcell.Color) tcell.Color {
	if active && on {
		return bright
	}
	return dim
}

// drawItem fills the contact area around the item center
func drawItem(ctx render.RenderContext, buf *render.RenderBuffer, item *components.DragItem, edge, center rune, color tcell.Color) {
	style := render.Fg(color)
	if item.Captured() {
		style = style.Reverse(true)
	}
	reach := ctx.Arena.Unit * constants.DragItemReach
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			p := item.Pos.Add(vmath.V(dx, dy))
			if ctx.Arena.OnWall(p) {
				continue
			}
			ch := edge
			if dx == 0 && dy == 0 {
				ch = center
			}
			if sx, sy, ok := ctx.MapToScreen(p.X, p.Y); ok {
				buf.Set(sx, sy, ch, style)
			}
		}
	}
}
