package render

import (
	"time"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Game time of the frame
	Now  time.Duration
	Tick uint64

	Arena engine.Arena

	// Arena offset from the terminal origin
	OffsetX int
	OffsetY int

	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots the frame state of ctx for a screen of width x height
// The arena and its status line are centered when the screen is larger than the arena
func NewRenderContext(ctx *engine.GameContext, width, height int) RenderContext {
	return RenderContext{
		Now:          ctx.Scheduler.Now(),
		Tick:         ctx.Scheduler.TickCount(),
		Arena:        ctx.Arena,
		OffsetX:      max(0, (width-ctx.Arena.Width-1)/2),
		OffsetY:      max(0, (height-ctx.Arena.Height-1-constants.StatusRows)/2),
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// MapToScreen converts arena coordinates to screen coordinates
// Returns visible=false if the cell is outside the screen
func (rc *RenderContext) MapToScreen(x, y int) (int, int, bool) {
	sx, sy := x+rc.OffsetX, y+rc.OffsetY
	return sx, sy, sx >= 0 && sx < rc.ScreenWidth && sy >= 0 && sy < rc.ScreenHeight
}

// StatusRow returns the screen row of the status line
func (rc *RenderContext) StatusRow() int {
	return rc.OffsetY + rc.Arena.Height + 1
}

// Blink reports the on phase of a square wave with the given period
func (rc *RenderContext) Blink(period time.Duration) bool {
	if period <= 0 {
		return true
	}
	return rc.Now%period < period/2
}
