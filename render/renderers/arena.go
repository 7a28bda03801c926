package renderers

import (
	"github.com/lixenwraith/troff/render"
)

// ArenaRenderer draws the arena walls
type ArenaRenderer struct{}

// NewArenaRenderer creates the wall renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render draws a box along x == 0, y == 0, x == Width and y == Height
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := ctx.Arena.Width, ctx.Arena.Height
	style := render.Fg(render.RgbWall)

	set := func(x, y int, ch rune) {
		if sx, sy, ok := ctx.MapToScreen(x, y); ok {
			buf.Set(sx, sy, ch, style)
		}
	}

	for x := 1; x < w; x++ {
		set(x, 0, '═')
		set(x, h, '═')
	}
	for y := 1; y < h; y++ {
		set(0, y, '║')
		set(w, y, '║')
	}
	set(0, 0, '╔')
	set(w, 0, '╗')
	set(0, h, '╚')
	set(w, h, '╝')
}
