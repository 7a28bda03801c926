package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

// AttractSystem runs the idle demo
// The idle timer is armed while the match waits for players; when it fires the match view is
// hidden and scripted cycles run until any input arrives
type AttractSystem struct {
	ctx *engine.GameContext

	routes []*ScriptedPlayer
	about  []*AboutPlayer

	idle        engine.TimerID
	idleTimeout time.Duration
	running     bool
	sub         engine.SubscriptionID
}

// NewAttractSystem builds the scripted cycles of script
// Route starts are offsets from the arena center; about boxes stack downward from above the center
func NewAttractSystem(ctx *engine.GameContext, script DemoScript) *AttractSystem {
	s := &AttractSystem{ctx: ctx, idleTimeout: constants.IdleTimeout}
	unit := ctx.Arena.Unit
	center := ctx.Arena.Center()

	for _, rec := range script.Routes {
		start := center.Add(vmath.V(rec.Start[0], rec.Start[1]).Scale(unit))
		s.routes = append(s.routes, NewScriptedPlayer(ctx, clampSlot(rec.Slot), start, rec.Route))
	}

	y := center.Y - ctx.Arena.Height/4
	for _, rec := range script.About {
		rec.Slot = clampSlot(rec.Slot)
		w, h := AboutBoxSize(rec, unit)
		origin := vmath.V(vmath.FloorTo(center.X-w/2, unit), vmath.FloorTo(y, unit))
		s.about = append(s.about, NewAboutPlayer(ctx, rec, origin))
		y += h + constants.AboutSpacing*unit
	}
	return s
}

func clampSlot(slot int) int {
	if slot < 0 || slot >= constants.MaxPlayers {
		return 0
	}
	return slot
}

// Running reports whether the demo is playing
func (s *AttractSystem) Running() bool {
	return s.running
}

// SetIdleTimeout changes the idle delay used from the next arming on
func (s *AttractSystem) SetIdleTimeout(d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("attract: idle timeout %v must be positive", d))
	}
	s.idleTimeout = d
}

// IdleArmed reports whether the idle timer is pending
func (s *AttractSystem) IdleArmed() bool {
	return s.idle != 0 && s.ctx.Scheduler.Pending(s.idle)
}

// ArmIdle starts the idle timer; arming twice is a caller bug
func (s *AttractSystem) ArmIdle() {
	if s.IdleArmed() {
		panic("attract: idle timer armed twice")
	}
	s.idle = s.ctx.Scheduler.After(s.idleTimeout, s.onIdleTimeout)
}

// DisarmIdle cancels the idle timer; panics if it is not armed
func (s *AttractSystem) DisarmIdle() {
	s.ctx.Scheduler.Cancel(s.idle)
	s.idle = 0
}

func (s *AttractSystem) onIdleTimeout() {
	s.idle = 0
	s.StartDemo()
}

// StartDemo hides the match and runs every scripted cycle
// A pending idle timer is cancelled, so the demo can also be started directly at launch
func (s *AttractSystem) StartDemo() {
	if s.running {
		panic("attract: demo started twice")
	}
	if s.IdleArmed() {
		s.DisarmIdle()
	}

	s.running = true
	for _, p := range s.routes {
		p.Start()
	}
	for _, a := range s.about {
		a.Start()
	}
	s.sub = s.ctx.Scheduler.Subscribe(s.onFrame)
	s.ctx.Emit(events.EventDemoStarted, nil)
	log.Printf("attract: demo started with %d routes and %d about boxes", len(s.routes), len(s.about))
}

// StopDemo removes the scripted cycles, shows the match and re-arms the idle timer
func (s *AttractSystem) StopDemo() {
	if !s.running {
		panic("attract: demo stopped while not running")
	}
	s.ctx.Scheduler.Unsubscribe(s.sub)
	s.sub = 0
	for _, p := range s.routes {
		p.Stop(false)
	}
	for _, a := range s.about {
		a.Stop()
	}
	s.running = false
	s.ArmIdle()
	s.ctx.Emit(events.EventDemoStopped, nil)
	log.Printf("attract: demo stopped")
}

// Poke registers user input
// A running demo is stopped and the input is consumed (returns true); otherwise an armed idle
// timer restarts its countdown
func (s *AttractSystem) Poke() bool {
	if s.running {
		s.StopDemo()
		return true
	}
	if s.IdleArmed() {
		s.DisarmIdle()
		s.ArmIdle()
	}
	return false
}

func (s *AttractSystem) onFrame(time.Duration) {
	for _, p := range s.routes {
		p.Advance()
	}
	for _, a := range s.about {
		a.Advance()
	}
}

// Routes returns the scripted route cycles
func (s *AttractSystem) Routes() []*ScriptedPlayer {
	return s.routes
}

// About returns the about boxes
func (s *AttractSystem) About() []*AboutPlayer {
	return s.about
}
