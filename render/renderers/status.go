package renderers

import (
	"fmt"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/systems"
)

// StatusRenderer draws the line under the arena: title, joined slots and the hint for the phase
type StatusRenderer struct {
	match   *systems.MatchSystem
	attract *systems.AttractSystem

	// Muted reports the sound state; nil hides the indicator
	Muted func() bool
}

// NewStatusRenderer creates the status line renderer
func NewStatusRenderer(match *systems.MatchSystem, attract *systems.AttractSystem) *StatusRenderer {
	return &StatusRenderer{match: match, attract: attract}
}

// Hint returns the instruction shown for the current phase
func (r *StatusRenderer) Hint() string {
	if r.attract.Running() {
		return "press any key"
	}
	switch r.match.Phase() {
	case systems.StateJoining:
		if r.match.CanClearWins() {
			return "1-4 join, c clears wins"
		}
		return "1-4 join"
	case systems.StateArmed:
		return "enter starts, 1-4 join"
	case systems.StateClearOffer:
		return fmt.Sprintf("%d wins reached, c clears wins", r.match.WinTarget())
	case systems.StateRed, systems.StateYellow:
		return "get ready"
	case systems.StateGreen:
		return "go"
	default:
		return ""
	}
}

// Render fills the status row
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.StatusRow()
	bg := render.StyleBackground.Background(render.RgbStatusBg)
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, y, ' ', bg)
	}

	x := 1
	x += buf.SetString(x, y, "TROFF", bg.Foreground(render.RgbStatusAccent).Bold(true))
	x += 2

	if !r.attract.Running() {
		for slot := 0; slot < constants.MaxPlayers; slot++ {
			style := bg.Foreground(render.RgbDimText)
			if r.match.Joined(slot) {
				style = bg.Foreground(render.PlayerColor(slot)).Bold(true)
			}
			x += buf.SetString(x, y, fmt.Sprintf("[%d]", slot+1), style)
			x++
		}
	}

	right := r.Hint()
	if r.Muted != nil && r.Muted() {
		right += "  (muted)"
	}
	rx := ctx.ScreenWidth - len(right) - 1
	if rx < x+1 {
		rx = x + 1
	}
	buf.SetString(rx, y, right, bg.Foreground(render.RgbText))
}
