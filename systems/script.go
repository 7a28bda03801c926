package systems

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/vmath"
)

// DemoScript is the attract mode data handed in by the entry point
type DemoScript struct {
	Routes []RouteRecord `toml:"routes"`
	About  []AboutRecord `toml:"about"`
}

// RouteRecord is one scripted cycle
// Start is a grid offset from the arena center; Route entries are [steps, turn]
type RouteRecord struct {
	Slot  int      `toml:"slot"`
	Start [2]int   `toml:"start"`
	Route [][2]int `toml:"route"`
}

// AboutRecord is a line of text boxed in by a scripted cycle
type AboutRecord struct {
	Slot int    `toml:"slot"`
	Size int    `toml:"size"`
	Text string `toml:"text"`
}

// ScriptedPlayer drives a cycle from a prerecorded route instead of input
// Reaching a zero turn explodes the cycle and reruns the route after a random delay
type ScriptedPlayer struct {
	*components.Player

	ctx     *engine.GameContext
	rng     *vmath.FastRand
	route   [][2]int
	idx     int
	counter int
	running bool

	respawn engine.TimerID
	finish  engine.TimerID
}

// NewScriptedPlayer creates an idle scripted cycle starting at start heading up
func NewScriptedPlayer(ctx *engine.GameContext, slot int, start vmath.Vec2, route [][2]int) *ScriptedPlayer {
	heading := vmath.V(0, -ctx.Arena.Unit)
	return &ScriptedPlayer{
		Player: components.NewPlayer(slot, components.RoleScripted, start, heading),
		ctx:    ctx,
		rng:    vmath.NewFastRand(ctx.Rand.Next()),
		route:  route,
	}
}

// Running reports whether the cycle is following its route
func (s *ScriptedPlayer) Running() bool {
	return s.running
}

// Start places the cycle and begins the route
func (s *ScriptedPlayer) Start() {
	if len(s.route) == 0 {
		return
	}
	s.respawn = 0
	s.Player.SetReady()
	s.running = true
	s.idx = 0
	s.counter = s.route[0][0] + 1
}

// Stop ends the run
// With restart the cycle explodes and reruns after DemoRespawnMin..DemoRespawnMax;
// without, a running cycle is removed at once and a pending rerun is cancelled
func (s *ScriptedPlayer) Stop(restart bool) {
	sched := s.ctx.Scheduler

	if s.running {
		s.running = false
		s.Player.SetDead(restart, sched.Now())
		if restart {
			s.finish = sched.After(constants.ExplodeDuration+constants.FadeDuration, s.finishDying)
		}
	} else if s.respawn != 0 {
		sched.Cancel(s.respawn)
		s.respawn = 0
	}

	if !restart {
		if s.finish != 0 {
			sched.Cancel(s.finish)
			s.finishDying()
		}
		return
	}

	ms := s.rng.IntRange(int(constants.DemoRespawnMin/time.Millisecond), int(constants.DemoRespawnMax/time.Millisecond))
	s.respawn = sched.After(time.Duration(ms)*time.Millisecond, s.Start)
}

func (s *ScriptedPlayer) finishDying() {
	s.finish = 0
	s.Player.FinishDying()
}

// Advance consumes one route step: counts down the current leg, turns or ends the run, then steps
func (s *ScriptedPlayer) Advance() {
	if !s.running {
		return
	}

	s.counter--
	if s.counter <= 0 {
		turn := s.route[s.idx][1]
		s.idx++
		if turn == 0 || s.idx >= len(s.route) {
			s.Stop(true)
			return
		}
		s.Player.ChangeHeading(turn)
		s.counter = s.route[s.idx][0]
	}
	s.Player.Step()
}

// AboutPlayer boxes a line of text with a scripted cycle tracing the box clockwise
type AboutPlayer struct {
	*ScriptedPlayer

	Text        string
	TextPos     vmath.Vec2 // First cell of the text
	TextVisible bool

	width  int
	height int
}

// NewAboutPlayer sizes the text box with top-left corner at origin
// The cycle starts at the bottom-left corner heading up: up h, right w, down h, left w
func NewAboutPlayer(ctx *engine.GameContext, rec AboutRecord, origin vmath.Vec2) *AboutPlayer {
	unit := ctx.Arena.Unit
	w, h := aboutBoxUnits(rec, unit)
	route := [][2]int{{h, -1}, {w, -1}, {h, -1}, {w, 0}}

	start := origin.Add(vmath.V(0, h*unit))
	a := &AboutPlayer{
		ScriptedPlayer: NewScriptedPlayer(ctx, rec.Slot, start, route),
		Text:           rec.Text,
		TextPos:        origin.Add(vmath.V(constants.AboutPadding*unit, (h*unit)/2)),
		width:          w * unit,
		height:         h * unit,
	}
	return a
}

// Size returns the box size in cells
func (a *AboutPlayer) Size() (int, int) {
	return a.width, a.height
}

// Start shows the text and begins tracing the box
func (a *AboutPlayer) Start() {
	a.TextVisible = true
	a.ScriptedPlayer.Start()
}

// Stop hides the text and removes the cycle without a rerun
func (a *AboutPlayer) Stop() {
	a.ScriptedPlayer.Stop(false)
	a.TextVisible = false
}

// AboutBoxSize returns the size in cells of the box traced around rec's text
func AboutBoxSize(rec AboutRecord, unit int) (int, int) {
	w, h := aboutBoxUnits(rec, unit)
	return w * unit, h * unit
}

func aboutBoxUnits(rec AboutRecord, unit int) (int, int) {
	size := rec.Size
	if size < 1 {
		size = 1
	}
	w := ceilUnits(runewidth.StringWidth(rec.Text)+2*constants.AboutPadding*unit, unit)
	return w, size + 1
}

// ceilUnits converts a cell length to whole grid units, rounding up
func ceilUnits(cells, unit int) int {
	return (cells + unit - 1) / unit
}
