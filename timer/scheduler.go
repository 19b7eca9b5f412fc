// Package timer provides cancellable callbacks driven by the game tick
// instead of wall-clock goroutines, so everything fires on the update thread.
package timer

import (
	"sort"
	"time"
)

// Scheduler keeps a virtual clock that only moves when Advance is called.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*Handle
	stopped bool
}

// Handle identifies one scheduled callback.
type Handle struct {
	s     *Scheduler
	seq   uint64
	at    time.Duration
	fn    func()
	done  bool
	fired bool
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	if s == nil {
		return 0
	}
	return s.now
}

// After schedules fn to run once d has elapsed. A stopped scheduler returns
// an already-cancelled handle.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	if s == nil || fn == nil {
		return &Handle{done: true}
	}
	s.seq++
	h := &Handle{s: s, seq: s.seq, at: s.now + d, fn: fn}
	if s.stopped {
		h.done = true
		return h
	}
	s.pending = append(s.pending, h)
	return h
}

// Advance moves the clock forward and runs every callback that became due,
// earliest deadline first. Callbacks may schedule or cancel other callbacks.
func (s *Scheduler) Advance(dt time.Duration) {
	if s == nil || s.stopped {
		return
	}
	if dt > 0 {
		s.now += dt
	}
	for {
		due := s.nextDue()
		if due == nil {
			return
		}
		due.done = true
		due.fired = true
		s.remove(due)
		due.fn()
		if s.stopped {
			return
		}
	}
}

func (s *Scheduler) nextDue() *Handle {
	var best *Handle
	for _, h := range s.pending {
		if h.done || h.at > s.now {
			continue
		}
		if best == nil || h.at < best.at || (h.at == best.at && h.seq < best.seq) {
			best = h
		}
	}
	return best
}

func (s *Scheduler) remove(h *Handle) {
	for i, p := range s.pending {
		if p == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks still waiting to run.
func (s *Scheduler) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.pending)
}

// Deadlines returns the remaining time of each pending callback, soonest first.
func (s *Scheduler) Deadlines() []time.Duration {
	if s == nil {
		return nil
	}
	out := make([]time.Duration, 0, len(s.pending))
	for _, h := range s.pending {
		out = append(out, h.at-s.now)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stop cancels every pending callback; later After calls are inert.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	for _, h := range s.pending {
		h.done = true
	}
	s.pending = nil
	s.stopped = true
}

// Cancel prevents the callback from running. It reports whether the
// callback was still pending.
func (h *Handle) Cancel() bool {
	if h == nil || h.done {
		return false
	}
	h.done = true
	if h.s != nil {
		h.s.remove(h)
	}
	return true
}

// Fired reports whether the callback ran.
func (h *Handle) Fired() bool {
	return h != nil && h.fired
}

// Active reports whether the callback is still waiting to run.
func (h *Handle) Active() bool {
	return h != nil && !h.done
}
