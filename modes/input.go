package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/troff/systems"
	"github.com/lixenwraith/troff/vmath"
)

// MousePointer is the pointer id of the terminal mouse
const MousePointer = 0

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// InputHandler turns terminal events into match and demo commands
// Every command is checked with the match's Can* query first; disallowed input is ignored
type InputHandler struct {
	match    *systems.MatchSystem
	attract  *systems.AttractSystem
	bindings *BindingTable
	sound    Muter

	// OffsetX and OffsetY locate the arena on the screen
	OffsetX int
	OffsetY int

	// OnResize is called on terminal resize
	OnResize func()

	dragging bool
}

// NewInputHandler creates a new input handler; sound may be nil
func NewInputHandler(match *systems.MatchSystem, attract *systems.AttractSystem, sound Muter) *InputHandler {
	return &InputHandler{
		match:    match,
		attract:  attract,
		bindings: DefaultBindings(),
		sound:    sound,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		if h.OnResize != nil {
			h.OnResize()
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	b, ok := h.bindings.Lookup(ev)
	if ok && b.Action == ActionQuit {
		return false
	}

	// Any key ends the demo and is swallowed
	if h.attract.Poke() || !ok {
		return true
	}

	switch b.Action {
	case ActionJoin:
		if h.match.CanJoin(b.Slot) {
			h.match.Join(b.Slot)
		}
	case ActionTurnLeft:
		if h.match.CanTurn(b.Slot) {
			h.match.Turn(b.Slot, 1)
		}
	case ActionTurnRight:
		if h.match.CanTurn(b.Slot) {
			h.match.Turn(b.Slot, -1)
		}
	case ActionStart:
		if h.match.CanStart() {
			h.match.Start()
		}
	case ActionClearWins:
		if h.match.CanClearWins() {
			h.match.ClearWins()
		}
	case ActionClearSlot:
		if h.match.CanClearWins() {
			h.match.ClearPlayerWins(b.Slot)
		}
	case ActionToggleMute:
		if h.sound != nil {
			h.sound.ToggleMute()
		}
	}
	return true
}

// handleMouseEvent drags the blocker or the shield with the primary button
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := vmath.V(x-h.OffsetX, y-h.OffsetY)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !h.dragging:
		if h.attract.Poke() {
			return
		}
		h.dragging = h.match.PointerDown(MousePointer, pos)
	case pressed && h.dragging:
		h.match.PointerMove(MousePointer, pos)
	case !pressed && h.dragging:
		h.match.PointerUp(MousePointer)
		h.dragging = false
	}
}
