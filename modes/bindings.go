package modes

import "github.com/gdamore/tcell/v2"

// ActionType classifies what a key does
type ActionType uint8

const (
	ActionNone       ActionType = iota
	ActionJoin                  // Commit a slot to the next round
	ActionTurnLeft              // Rotate a slot's cycle +1
	ActionTurnRight             // Rotate a slot's cycle -1
	ActionStart                 // Begin the countdown
	ActionClearWins             // Reset every win counter
	ActionClearSlot             // Reset one slot's wins
	ActionToggleMute            // Sound on/off
	ActionQuit                  // Leave the program
)

// Binding maps a key to its behavior
type Binding struct {
	Action ActionType
	Slot   int // Player slot for per-player actions
}

// BindingTable holds all key bindings
type BindingTable struct {
	runes map[rune]Binding
	keys  map[tcell.Key]Binding
}

// DefaultBindings returns the default layout: each player has a join key and a left/right pair
//
//	slot 1: 1  q w    slot 2: 2  o p
//	slot 3: 3  z x    slot 4: 4  n m
func DefaultBindings() *BindingTable {
	return &BindingTable{
		runes: map[rune]Binding{
			'1': {ActionJoin, 0},
			'2': {ActionJoin, 1},
			'3': {ActionJoin, 2},
			'4': {ActionJoin, 3},

			'q': {ActionTurnLeft, 0},
			'w': {ActionTurnRight, 0},
			'o': {ActionTurnLeft, 1},
			'p': {ActionTurnRight, 1},
			'z': {ActionTurnLeft, 2},
			'x': {ActionTurnRight, 2},
			'n': {ActionTurnLeft, 3},
			'm': {ActionTurnRight, 3},

			'c': {ActionClearWins, 0},
			'!': {ActionClearSlot, 0},
			'@': {ActionClearSlot, 1},
			'#': {ActionClearSlot, 2},
			'$': {ActionClearSlot, 3},

			's': {ActionToggleMute, 0},
		},
		keys: map[tcell.Key]Binding{
			tcell.KeyEnter:  {ActionStart, 0},
			tcell.KeyEscape: {ActionQuit, 0},
			tcell.KeyCtrlC:  {ActionQuit, 0},
			tcell.KeyCtrlQ:  {ActionQuit, 0},
		},
	}
}

// Lookup returns the binding of a key event
func (t *BindingTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := t.runes[ev.Rune()]
		return b, ok
	}
	b, ok := t.keys[ev.Key()]
	return b, ok
}
