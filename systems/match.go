package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/troff/components"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/engine/fsm"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/vmath"
)

// Match FSM state names referenced from code
const (
	StateWaiting    = "Waiting"
	StateLobby      = "Lobby"
	StateJoining    = "Joining"
	StateArmed      = "Armed"
	StateClearOffer = "ClearOffer"
	StateCountdown  = "Countdown"
	StateRed        = "CountdownRed"
	StateYellow     = "CountdownYellow"
	StateActive     = "Active"
	StateGreen      = "Green"
	StateRoundEnd   = "RoundEnd"
)

// MatchSystem owns the players, the blocker and the shield and runs the match lifecycle
// Lifecycle transitions come from the TOML graph; commands and timers feed it events synchronously
type MatchSystem struct {
	ctx     *engine.GameContext
	fsm     *fsm.Machine[*MatchSystem]
	attract *AttractSystem

	Players [constants.MaxPlayers]*components.Player
	Blocker *components.Blocker
	Shield  *components.Shield

	joined    [constants.MaxPlayers]bool
	active    []*components.Player
	winsShown bool
	winTarget int
	decided   bool

	dying [constants.MaxPlayers]engine.TimerID
}

// NewMatchSystem loads the match graph, enters the lobby and subscribes to frames
// attract provides the idle timer armed while the match waits for players
func NewMatchSystem(ctx *engine.GameContext, attract *AttractSystem, graph string, winTarget int) (*MatchSystem, error) {
	if winTarget <= 0 {
		winTarget = constants.WinTarget
	}
	a := ctx.Arena
	m := &MatchSystem{
		ctx:       ctx,
		fsm:       fsm.NewMachine[*MatchSystem](),
		attract:   attract,
		Blocker:   components.NewBlocker(a.Width, a.Height, a.Unit, ctx.Rand),
		Shield:    components.NewShield(a.Width, a.Height, a.Unit, ctx.Rand),
		winTarget: winTarget,
	}
	for slot := range m.Players {
		pos, heading := a.Start(slot)
		m.Players[slot] = components.NewPlayer(slot, components.RoleReal, pos, heading)
	}

	m.registerFSM()
	if err := m.fsm.LoadConfig([]byte(graph)); err != nil {
		return nil, fmt.Errorf("failed to load match FSM: %w", err)
	}
	if err := m.fsm.Init(m); err != nil {
		return nil, fmt.Errorf("failed to init match FSM: %w", err)
	}

	ctx.Scheduler.Subscribe(m.OnFrame)
	ctx.Emit(events.EventGameStarted, nil)
	return m, nil
}

func (m *MatchSystem) registerFSM() {
	m.fsm.RegisterAction("EmitEvent", func(m *MatchSystem, args any) {
		m.ctx.Emit(args.(*fsm.EmitEventArgs).Type, nil)
	})
	m.fsm.RegisterAction("ArmIdleTimer", func(m *MatchSystem, _ any) { m.attract.ArmIdle() })
	m.fsm.RegisterAction("DisarmIdleTimer", func(m *MatchSystem, _ any) { m.attract.DisarmIdle() })
	m.fsm.RegisterAction("PrepareLobby", (*MatchSystem).prepareLobby)
	m.fsm.RegisterAction("StartRound", (*MatchSystem).startRound)
	m.fsm.RegisterAction("ScheduleCountdown", (*MatchSystem).scheduleCountdown)
	m.fsm.RegisterAction("ActivateItems", (*MatchSystem).activateItems)
	m.fsm.RegisterAction("DeactivateItems", (*MatchSystem).deactivateItems)
	m.fsm.RegisterAction("ScheduleRoundReset", (*MatchSystem).scheduleRoundReset)
	m.fsm.RegisterAction("ResetRound", (*MatchSystem).resetRound)

	m.fsm.RegisterGuard("EnoughPlayers", func(m *MatchSystem) bool {
		return m.JoinedCount() >= constants.MinPlayersToStart
	})
	m.fsm.RegisterGuard("WinTargetReached", (*MatchSystem).WinTargetReached)
	m.fsm.RegisterGuard("WinsBelowTarget", func(m *MatchSystem) bool {
		return !m.WinTargetReached()
	})
}

// signal queues an event for the presentation handlers and feeds it to the match FSM
func (m *MatchSystem) signal(t events.EventType, payload any) {
	m.ctx.Emit(t, payload)
	m.fsm.HandleEvent(m, t)
}

// === FSM actions ===

func (m *MatchSystem) prepareLobby(any) {
	m.joined = [constants.MaxPlayers]bool{}
	m.active = m.active[:0]
	m.decided = false
	m.Blocker.Jump()
	m.Shield.Jump()
}

func (m *MatchSystem) startRound(any) {
	m.active = m.active[:0]
	for slot, p := range m.Players {
		if m.joined[slot] {
			p.SetReady()
			m.active = append(m.active, p)
		}
	}
	m.decided = false
	log.Printf("match: round started with %d players", len(m.active))
}

func (m *MatchSystem) scheduleCountdown(any) {
	m.ctx.Scheduler.After(constants.CountdownPhaseDuration, func() {
		m.signal(events.EventCountdownElapsed, nil)
	})
}

func (m *MatchSystem) activateItems(any) {
	m.Blocker.Activate()
	m.Shield.Activate()
}

func (m *MatchSystem) deactivateItems(any) {
	m.Blocker.Deactivate()
	m.Shield.Deactivate()
}

func (m *MatchSystem) scheduleRoundReset(any) {
	m.ctx.Scheduler.After(constants.RoundEndDelay, func() {
		m.signal(events.EventRoundReset, nil)
	})
}

// resetRound removes the survivors without a death effect and shows the wins board
func (m *MatchSystem) resetRound(any) {
	now := m.ctx.Scheduler.Now()
	for _, p := range m.active {
		p.SetDead(false, now)
	}
	for slot, id := range m.dying {
		if id != 0 {
			m.ctx.Scheduler.Cancel(id)
			m.dying[slot] = 0
			m.Players[slot].FinishDying()
		}
	}
	m.active = m.active[:0]
	m.winsShown = true
}

// === Commands ===

// CanJoin reports whether slot may join the next round
func (m *MatchSystem) CanJoin(slot int) bool {
	return validSlot(slot) && m.fsm.InState(StateLobby) && !m.joined[slot] && !m.attract.Running()
}

// Join commits slot to the next round; the first join hides the wins board, the second arms start
func (m *MatchSystem) Join(slot int) {
	if !validSlot(slot) || !m.fsm.InState(StateLobby) {
		panic(fmt.Sprintf("match: join of slot %d in state %s", slot, m.fsm.CurrentState()))
	}
	if m.joined[slot] {
		panic(fmt.Sprintf("match: slot %d joined twice", slot))
	}
	m.joined[slot] = true
	if m.JoinedCount() == 1 {
		m.winsShown = false
	}
	m.signal(events.EventPlayerJoined, &events.PlayerPayload{Slot: slot})
}

// CanStart reports whether enough players joined
func (m *MatchSystem) CanStart() bool {
	return m.fsm.CurrentState() == StateArmed && !m.attract.Running()
}

// Start locks the joins and begins the countdown
func (m *MatchSystem) Start() {
	if m.fsm.CurrentState() != StateArmed {
		panic(fmt.Sprintf("match: start in state %s", m.fsm.CurrentState()))
	}
	m.signal(events.EventStartRequest, nil)
}

// CanTurn reports whether slot steers a live cycle in the running round
func (m *MatchSystem) CanTurn(slot int) bool {
	return validSlot(slot) && m.fsm.InState(StateActive) && m.joined[slot] && m.Players[slot].Alive()
}

// Turn rotates slot's cycle, +1 left and -1 right
func (m *MatchSystem) Turn(slot, turn int) {
	if !validSlot(slot) || !m.fsm.InState(StateActive) {
		panic(fmt.Sprintf("match: turn of slot %d in state %s", slot, m.fsm.CurrentState()))
	}
	m.Players[slot].ChangeHeading(turn)
}

// CanClearWins reports whether the wins board is shown and accepts a reset
func (m *MatchSystem) CanClearWins() bool {
	return m.winsShown && m.fsm.InState(StateWaiting) && !m.attract.Running()
}

// ClearWins resets every win counter; leaves the clear offer
func (m *MatchSystem) ClearWins() {
	m.mustClearWins()
	for _, p := range m.Players {
		p.Wins.Reset()
	}
	log.Printf("match: all wins cleared")
	m.signal(events.EventWinsCleared, &events.PlayerPayload{Slot: -1})
}

// ClearPlayerWins resets one slot's counter; the clear offer is left once nobody is at the target
func (m *MatchSystem) ClearPlayerWins(slot int) {
	m.mustClearWins()
	if !validSlot(slot) {
		panic(fmt.Sprintf("match: clear wins of invalid slot %d", slot))
	}
	m.Players[slot].Wins.Reset()
	m.signal(events.EventWinsCleared, &events.PlayerPayload{Slot: slot})
}

func (m *MatchSystem) mustClearWins() {
	if !m.CanClearWins() {
		panic(fmt.Sprintf("match: clear wins in state %s with board shown=%v", m.fsm.CurrentState(), m.winsShown))
	}
}

// === Pointer drag of blocker and shield ===

func (m *MatchSystem) itemsDraggable() bool {
	return !m.attract.Running() && !m.fsm.InState(StateRoundEnd)
}

// PointerDown captures the item under pos for pointer id, blocker first
func (m *MatchSystem) PointerDown(id int, pos vmath.Vec2) bool {
	if !m.itemsDraggable() {
		return false
	}
	if m.Blocker.PointerDown(id, pos) {
		return true
	}
	return m.Shield.PointerDown(id, pos)
}

// PointerMove drags whichever item pointer id holds
func (m *MatchSystem) PointerMove(id int, pos vmath.Vec2) {
	m.Blocker.PointerMove(id, pos)
	m.Shield.PointerMove(id, pos)
}

// PointerUp releases pointer id's capture
func (m *MatchSystem) PointerUp(id int) {
	m.Blocker.PointerUp(id)
	m.Shield.PointerUp(id)
}

// === Simulation ===

// OnFrame advances the match FSM and, while a round runs, steps, collides and resolves
func (m *MatchSystem) OnFrame(dt time.Duration) {
	m.fsm.Update(m, dt)
	if !m.fsm.InState(StateActive) || m.decided {
		return
	}

	for _, p := range m.active {
		p.Step()
	}

	var crashed []*components.Player
	for _, p := range m.active {
		res := CheckCrash(m.ctx.Arena, p, m.active, m.Blocker)
		if res.Absorbed {
			m.ctx.Emit(events.EventShieldAbsorbed, &events.PlayerPayload{Slot: p.Slot})
		}
		if res.Crashed() {
			crashed = append(crashed, p)
			m.ctx.Emit(events.EventPlayerCrashed, &events.CrashPayload{Slot: p.Slot, Pos: p.Pos, Cause: res.Cause})
			log.Printf("match: player %d crashed into %s at %v", p.Slot, res.Cause, p.Pos)
		}
	}
	for _, p := range crashed {
		m.kill(p)
	}

	m.resolve()
}

func (m *MatchSystem) kill(p *components.Player) {
	p.SetDead(true, m.ctx.Scheduler.Now())
	slot := p.Slot
	m.dying[slot] = m.ctx.Scheduler.After(constants.ExplodeDuration+constants.FadeDuration, func() {
		m.dying[slot] = 0
		p.FinishDying()
	})
	for i, q := range m.active {
		if q == p {
			m.active = append(m.active[:i], m.active[i+1:]...)
			break
		}
	}
}

// resolve applies the round policy after all crash tests of a tick
func (m *MatchSystem) resolve() {
	switch len(m.active) {
	case 0:
		m.decide(-1)
	case 1:
		winner := m.active[0]
		winner.Wins.Inc()
		m.decide(winner.Slot)
	default:
		for _, p := range m.active {
			if CheckShield(p, m.Shield) {
				m.ctx.Emit(events.EventShieldGrabbed, &events.PlayerPayload{Slot: p.Slot})
			}
		}
	}
}

func (m *MatchSystem) decide(winner int) {
	m.decided = true
	payload := &events.RoundPayload{Winner: winner, TargetHit: m.WinTargetReached()}
	if winner >= 0 {
		payload.Wins = m.Players[winner].Wins.Count()
	}
	log.Printf("match: round decided, winner=%d wins=%d target=%v", winner, payload.Wins, payload.TargetHit)
	m.signal(events.EventRoundDecided, payload)
}

// === Queries ===

// JoinedCount returns the number of slots committed to the next round
func (m *MatchSystem) JoinedCount() int {
	n := 0
	for _, j := range m.joined {
		if j {
			n++
		}
	}
	return n
}

// Joined reports whether slot joined the current or next round
func (m *MatchSystem) Joined(slot int) bool {
	return validSlot(slot) && m.joined[slot]
}

// ActivePlayers returns the cycles still alive in the running round
func (m *MatchSystem) ActivePlayers() []*components.Player {
	return m.active
}

// WinTargetReached reports whether any player has the target number of wins
func (m *MatchSystem) WinTargetReached() bool {
	for _, p := range m.Players {
		if p.Wins.Count() >= m.winTarget {
			return true
		}
	}
	return false
}

// WinTarget returns the win count that forces a reset
func (m *MatchSystem) WinTarget() int {
	return m.winTarget
}

// WinsShown reports whether the wins board is visible
func (m *MatchSystem) WinsShown() bool {
	return m.winsShown
}

// Phase returns the active match state name
func (m *MatchSystem) Phase() string {
	return m.fsm.CurrentState()
}

// InPhase reports whether name is the active state or one of its ancestors
func (m *MatchSystem) InPhase(name string) bool {
	return m.fsm.InState(name)
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < constants.MaxPlayers
}
