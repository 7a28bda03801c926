package components

import (
	"fmt"

	"github.com/lixenwraith/troff/vmath"
)

// Segment is one straight run of a trail
// Stored canonically: Start <= End on both axes, so segments always run rightward or downward
type Segment struct {
	Start vmath.Vec2
	End   vmath.Vec2
}

// Contains reports whether pos lies on the segment
// Relies on canonical ordering, one inequality form per axis
func (s Segment) Contains(pos vmath.Vec2) bool {
	return (pos.X == s.Start.X && s.Start.Y <= pos.Y && pos.Y <= s.End.Y) ||
		(pos.Y == s.Start.Y && s.Start.X <= pos.X && pos.X <= s.End.X)
}

// Canonical reports whether the endpoint ordering invariant holds
func (s Segment) Canonical() bool {
	return s.Start.X <= s.End.X && s.Start.Y <= s.End.Y
}

// Trail is a cycle's path history for the current life
// Segments are kept oldest-first internally; index 0 of the public accessors is the head segment
type Trail struct {
	segments []Segment
}

// AppendSegment starts a new zero-length head segment anchored at head
func (t *Trail) AppendSegment(head vmath.Vec2) {
	t.segments = append(t.segments, Segment{Start: head, End: head})
}

// ExtendHead moves the free endpoint of the head segment to pos
// negative selects the Start endpoint (heading toward decreasing x or y), keeping the segment canonical
func (t *Trail) ExtendHead(pos vmath.Vec2, negative bool) {
	if len(t.segments) == 0 {
		panic(fmt.Sprintf("trail: extend %v on empty trail", pos))
	}
	head := &t.segments[len(t.segments)-1]
	if negative {
		head.Start = pos
	} else {
		head.End = pos
	}
}

// Clear discards the whole trail
func (t *Trail) Clear() {
	t.segments = t.segments[:0]
}

// Len returns the segment count
func (t *Trail) Len() int {
	return len(t.segments)
}

// At returns the i-th segment, newest first
func (t *Trail) At(i int) Segment {
	return t.segments[len(t.segments)-1-i]
}

// Head returns the growing segment
func (t *Trail) Head() (Segment, bool) {
	if len(t.segments) == 0 {
		return Segment{}, false
	}
	return t.segments[len(t.segments)-1], true
}

// Segments returns a copy of the trail, newest first
func (t *Trail) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	for i := range t.segments {
		out[i] = t.At(i)
	}
	return out
}
