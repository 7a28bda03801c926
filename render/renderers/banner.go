package renderers

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/render"
)

// BannerRenderer shows round results in the middle of the arena
// It is an event handler: round and demo events set or clear the message
type BannerRenderer struct {
	text  string
	color tcell.Color
	until time.Duration
}

// NewBannerRenderer creates an empty banner
func NewBannerRenderer() *BannerRenderer {
	return &BannerRenderer{}
}

// EventTypes returns the events that change the banner
func (r *BannerRenderer) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRoundDecided,
		events.EventClearOffered,
		events.EventPlayerJoined,
		events.EventDemoStarted,
	}
}

// HandleEvent updates the message
func (r *BannerRenderer) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventRoundDecided:
		p, ok := event.Payload.(*events.RoundPayload)
		if !ok {
			return
		}
		if p.Winner < 0 {
			r.show("DRAW", render.RgbText, event.At+constants.RoundEndDelay)
		} else {
			r.show(fmt.Sprintf("PLAYER %d WINS", p.Winner+1), render.PlayerColor(p.Winner), event.At+constants.RoundEndDelay)
		}
	case events.EventClearOffered:
		// Stays until wins are cleared and somebody joins
		r.show("MATCH OVER", render.RgbStatusAccent, math.MaxInt64)
	case events.EventPlayerJoined, events.EventDemoStarted:
		r.text = ""
	}
}

func (r *BannerRenderer) show(text string, color tcell.Color, until time.Duration) {
	r.text = text
	r.color = color
	r.until = until
}

// Text returns the message shown at now, empty when none
func (r *BannerRenderer) Text(now time.Duration) string {
	if now >= r.until {
		return ""
	}
	return r.text
}

// Render draws the message centered two rows above the middle
func (r *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	text := r.Text(ctx.Now)
	if text == "" {
		return
	}
	c := ctx.Arena.Center()
	x := c.X - runewidth.StringWidth(text)/2
	if sx, sy, ok := ctx.MapToScreen(x, c.Y-2); ok {
		buf.SetString(sx, sy, text, render.Fg(r.color).Bold(true))
	}
}
