package engine

import (
	"fmt"
	"sort"
	"time"
)

// TimerID identifies a deferred callback
// Zero is never issued and can be used as "no timer"
type TimerID uint64

// SubscriptionID identifies a frame handler
type SubscriptionID uint64

// FrameFunc runs once per tick with the tick's delta
type FrameFunc func(dt time.Duration)

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

type frameSub struct {
	id SubscriptionID
	fn FrameFunc
}

// ClockScheduler owns game time, deferred callbacks and per-frame handlers
// Single-threaded: every method must be called from the main loop goroutine
// Game time only advances through Advance/Tick, so tests drive it deterministically
type ClockScheduler struct {
	now       time.Duration
	tickCount uint64

	nextTimer TimerID
	timers    []timer // sorted by (due, id)

	nextSub SubscriptionID
	subs    []frameSub
}

// NewClockScheduler creates a scheduler at game time zero
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{}
}

// Now returns the current game time
func (cs *ClockScheduler) Now() time.Duration {
	return cs.now
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// After schedules fn to run once d from now
func (cs *ClockScheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	cs.nextTimer++
	t := timer{id: cs.nextTimer, due: cs.now + d, fn: fn}

	i := sort.Search(len(cs.timers), func(i int) bool {
		return cs.timers[i].due > t.due
	})
	cs.timers = append(cs.timers, timer{})
	copy(cs.timers[i+1:], cs.timers[i:])
	cs.timers[i] = t
	return t.id
}

// Pending reports whether id is scheduled and not yet fired
func (cs *ClockScheduler) Pending(id TimerID) bool {
	return cs.indexOf(id) >= 0
}

// Cancel removes a pending callback
// Cancelling a fired, cancelled or unknown timer is a caller bug and panics
func (cs *ClockScheduler) Cancel(id TimerID) {
	i := cs.indexOf(id)
	if i < 0 {
		panic(fmt.Sprintf("scheduler: cancel of timer %d which is not pending", id))
	}
	cs.timers = append(cs.timers[:i], cs.timers[i+1:]...)
}

// PendingCount returns the number of scheduled callbacks
func (cs *ClockScheduler) PendingCount() int {
	return len(cs.timers)
}

func (cs *ClockScheduler) indexOf(id TimerID) int {
	for i := range cs.timers {
		if cs.timers[i].id == id {
			return i
		}
	}
	return -1
}

// Advance moves game time forward by dt, firing due callbacks in (due, scheduling) order
// While a callback runs Now reports its due time, so chained timers keep exact spacing
func (cs *ClockScheduler) Advance(dt time.Duration) {
	target := cs.now + dt
	for len(cs.timers) > 0 && cs.timers[0].due <= target {
		t := cs.timers[0]
		cs.timers = cs.timers[1:]
		cs.now = t.due
		t.fn()
	}
	cs.now = target
}

// Subscribe registers fn to run on every tick after timers fire
func (cs *ClockScheduler) Subscribe(fn FrameFunc) SubscriptionID {
	cs.nextSub++
	cs.subs = append(cs.subs, frameSub{id: cs.nextSub, fn: fn})
	return cs.nextSub
}

// Unsubscribe removes a frame handler, returns false if it was not registered
func (cs *ClockScheduler) Unsubscribe(id SubscriptionID) bool {
	for i := range cs.subs {
		if cs.subs[i].id == id {
			cs.subs = append(cs.subs[:i:i], cs.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Tick advances time by dt then runs frame handlers in subscription order
// Handlers added or removed during a tick take effect on the next tick
func (cs *ClockScheduler) Tick(dt time.Duration) {
	cs.Advance(dt)
	cs.tickCount++

	subs := cs.subs
	for _, s := range subs {
		s.fn(dt)
	}
}
