package wordarena

import (
	"sort"
	"time"
)

// TimerHandle identifies a scheduled action so it can be cancelled.
type TimerHandle uint64

type timedAction struct {
	at     time.Time
	handle TimerHandle
	fn     func(now time.Time)
}

// Scheduler is a time-ordered queue of deferred actions. It never runs
// anything on its own: Run fires whatever is due at the time it is given,
// so all deferred work happens on the caller's tick.
type Scheduler struct {
	queue []timedAction
	next  TimerHandle
}

// After schedules fn to run at now+d. Actions due at the same instant fire
// in scheduling order.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func(now time.Time)) TimerHandle {
	s.next++
	a := timedAction{at: now.Add(d), handle: s.next, fn: fn}
	i := sort.Search(len(s.queue), func(i int) bool {
		return s.queue[i].at.After(a.at)
	})
	s.queue = append(s.queue, timedAction{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = a
	return a.handle
}

// Cancel removes a pending action. It reports false if the action already
// ran or was never scheduled.
func (s *Scheduler) Cancel(h TimerHandle) bool {
	for i := range s.queue {
		if s.queue[i].handle == h {
			copy(s.queue[i:], s.queue[i+1:])
			s.queue[len(s.queue)-1] = timedAction{}
			s.queue = s.queue[:len(s.queue)-1]
			return true
		}
	}
	return false
}

// Run fires every action due at or before now, including actions that due
// actions schedule, and returns how many ran.
func (s *Scheduler) Run(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].at.After(now) {
		a := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue[len(s.queue)-1] = timedAction{}
		s.queue = s.queue[:len(s.queue)-1]
		a.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of scheduled actions.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Clear drops every pending action.
func (s *Scheduler) Clear() {
	clear(s.queue)
	s.queue = s.queue[:0]
}
