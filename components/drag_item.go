package components

import (
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/vmath"
)

// NoPointer marks a drag item with no capturing pointer
const NoPointer = -1

// DragItem is a grid-anchored hazard or pickup that a pointer can drag around the arena
// Pos is the item's center; random and dragged positions stay within [Unit, Width) x [Unit, Height)
type DragItem struct {
	Pos    vmath.Vec2
	Active bool

	unit       int
	grabRadius int
	min        vmath.Vec2
	max        vmath.Vec2 // exclusive
	rng        *vmath.FastRand

	capture    int
	dragOffset vmath.Vec2
}

func newDragItem(width, height, unit int, rng *vmath.FastRand) DragItem {
	return DragItem{
		unit:       unit,
		grabRadius: 2 * unit,
		min:        vmath.V(unit, unit),
		max:        vmath.V(width, height),
		rng:        rng,
		capture:    NoPointer,
	}
}

// Jump moves the item to a random grid position
func (d *DragItem) Jump() {
	d.Pos = vmath.V(
		d.rng.GridPoint(d.min.X, d.max.X, d.unit),
		d.rng.GridPoint(d.min.Y, d.max.Y, d.unit),
	)
}

// Activate makes the item collidable
func (d *DragItem) Activate() {
	d.Active = true
}

// Deactivate disables collisions and forcibly releases any pointer capture
func (d *DragItem) Deactivate() {
	d.Active = false
	d.capture = NoPointer
}

// Captured reports whether a pointer is dragging the item
func (d *DragItem) Captured() bool {
	return d.capture != NoPointer
}

// CapturedBy returns the capturing pointer id or NoPointer
func (d *DragItem) CapturedBy() int {
	return d.capture
}

// Touches reports contact with a cycle head at pos
// Inactive or dragged items never collide
func (d *DragItem) Touches(pos vmath.Vec2) bool {
	if !d.Active || d.Captured() {
		return false
	}
	return d.Pos.Within(pos, d.unit*constants.DragItemReach)
}

// PointerDown claims the item for pointer id if at is on the item and no other pointer holds it
func (d *DragItem) PointerDown(id int, at vmath.Vec2) bool {
	if d.Captured() || !d.Pos.Within(at, d.grabRadius) {
		return false
	}
	d.capture = id
	d.dragOffset = at.Sub(d.Pos)
	return true
}

// PointerMove drags the item, snapped to the grid; moves outside the bounds are ignored
func (d *DragItem) PointerMove(id int, at vmath.Vec2) {
	if d.capture != id {
		return
	}
	pos := at.Sub(d.dragOffset).Snap(d.unit)
	if d.min.X <= pos.X && pos.X < d.max.X && d.min.Y <= pos.Y && pos.Y < d.max.Y {
		d.Pos = pos
	}
}

// PointerUp releases the capture held by pointer id
func (d *DragItem) PointerUp(id int) {
	if d.capture == id {
		d.capture = NoPointer
	}
}

// Blocker is the round obstacle, instant death on contact
type Blocker struct {
	DragItem
}

// NewBlocker creates an obstacle for an arena of the given size
func NewBlocker(width, height, unit int, rng *vmath.FastRand) *Blocker {
	return &Blocker{DragItem: newDragItem(width, height, unit, rng)}
}

// Shield is the single pickup absorbing one trail collision
type Shield struct {
	DragItem
	owner int // slot of the holding cycle, -1 when free
}

// NewShield creates a free shield for an arena of the given size
func NewShield(width, height, unit int, rng *vmath.FastRand) *Shield {
	return &Shield{DragItem: newDragItem(width, height, unit, rng), owner: -1}
}

// Jump relocates the shield and frees it
func (s *Shield) Jump() {
	s.DragItem.Jump()
	s.owner = -1
}

// Grab attaches the shield to the cycle in slot
func (s *Shield) Grab(slot int) {
	s.owner = slot
}

// Grabbed reports whether a cycle holds the shield
func (s *Shield) Grabbed() bool {
	return s.owner >= 0
}

// Owner returns the holding slot or -1
func (s *Shield) Owner() int {
	return s.owner
}

// Follow keeps a held shield on its owner
func (s *Shield) Follow(pos vmath.Vec2) {
	s.Pos = pos
}

// Touches reports whether a free shield can be picked up at pos
func (s *Shield) Touches(pos vmath.Vec2) bool {
	if s.Grabbed() {
		return false
	}
	return s.DragItem.Touches(pos)
}

// PointerDown refuses drags while a cycle holds the shield
func (s *Shield) PointerDown(id int, at vmath.Vec2) bool {
	if s.Grabbed() {
		return false
	}
	return s.DragItem.PointerDown(id, at)
}
