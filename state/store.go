// Package state holds the portfolio's UI state: which section is open,
// whether the camera is mid-transition, and whether the splash is showing.
package state

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/timer"
)

var ErrUnknownSection = errors.New("state: unknown section")

const (
	DefaultTransitionDuration = 1000 * time.Millisecond
	DefaultLoadingDuration    = 3000 * time.Millisecond
)

// ChangeKind says which mutation produced a Change.
type ChangeKind int

const (
	ChangeSelect ChangeKind = iota + 1
	ChangeDeselect
	ChangeTransitionDone
	ChangeLoadingDone
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeDeselect:
		return "deselect"
	case ChangeTransitionDone:
		return "transition_done"
	case ChangeLoadingDone:
		return "loading_done"
	default:
		return "unknown"
	}
}

// Change is delivered to listeners after the store has been mutated.
type Change struct {
	Kind    ChangeKind
	Section Section
	// Previous is the section that was open before the mutation.
	Previous Section
	// Anchor is the clicked hotspot position for ChangeSelect.
	Anchor mgl64.Vec3
}

type Options struct {
	TransitionDuration time.Duration
	LoadingDuration    time.Duration
}

// Store is the single owner of section, transition and loading flags.
// All mutation goes through SelectSection, DeselectSection and the timers
// they schedule.
type Store struct {
	sched *timer.Scheduler
	opts  Options

	section       Section
	anchor        mgl64.Vec3
	transitioning bool
	loading       bool

	transitionTimer *timer.Handle
	loadingTimer    *timer.Handle

	listeners []func(Change)
	closed    bool
}

// NewStore starts in the home view with the loading flag raised; it drops
// after opts.LoadingDuration regardless of anything else.
func NewStore(sched *timer.Scheduler, opts Options) *Store {
	if opts.TransitionDuration <= 0 {
		opts.TransitionDuration = DefaultTransitionDuration
	}
	if opts.LoadingDuration <= 0 {
		opts.LoadingDuration = DefaultLoadingDuration
	}
	if sched == nil {
		sched = timer.New()
	}
	s := &Store{sched: sched, opts: opts, loading: true}
	s.loadingTimer = sched.After(opts.LoadingDuration, s.finishLoading)
	return s
}

// Subscribe registers fn to run synchronously after every change.
func (s *Store) Subscribe(fn func(Change)) {
	if s == nil || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *Store) Section() Section { return s.section }
func (s *Store) Anchor() mgl64.Vec3 { return s.anchor }
func (s *Store) Transitioning() bool { return s.transitioning }
func (s *Store) Loading() bool { return s.loading }
func (s *Store) Options() Options { return s.opts }
func (s *Store) ControlsEnabled() bool { return !s.transitioning }
func (s *Store) ScrollLocked() bool { return s.transitioning }
func (s *Store) Closed() bool { return s.closed }

// SelectSection opens section and starts a camera transition toward the
// hotspot at anchor. Re-selecting mid-transition is allowed: the latest
// call wins and the flag timer restarts.
func (s *Store) SelectSection(section Section, anchor mgl64.Vec3) error {
	if !section.Selectable() {
		return ErrUnknownSection
	}
	if s.closed {
		return nil
	}
	prev := s.section
	s.section = section
	s.anchor = anchor
	s.beginTransition()
	s.emit(Change{Kind: ChangeSelect, Section: section, Previous: prev, Anchor: anchor})
	return nil
}

// DeselectSection returns to the home view. It always starts a transition,
// even when no section was open.
func (s *Store) DeselectSection() {
	if s.closed {
		return
	}
	prev := s.section
	s.section = SectionNone
	s.anchor = mgl64.Vec3{}
	s.beginTransition()
	s.emit(Change{Kind: ChangeDeselect, Section: SectionNone, Previous: prev})
}

// Close cancels pending timers. Later mutations are ignored.
func (s *Store) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.transitionTimer.Cancel()
	s.loadingTimer.Cancel()
}

func (s *Store) beginTransition() {
	s.transitionTimer.Cancel()
	s.transitioning = true
	s.transitionTimer = s.sched.After(s.opts.TransitionDuration, s.finishTransition)
}

func (s *Store) finishTransition() {
	if s.closed {
		return
	}
	s.transitioning = false
	s.emit(Change{Kind: ChangeTransitionDone, Section: s.section, Previous: s.section, Anchor: s.anchor})
}

func (s *Store) finishLoading() {
	if s.closed || !s.loading {
		return
	}
	s.loading = false
	s.emit(Change{Kind: ChangeLoadingDone, Section: s.section, Previous: s.section})
}

func (s *Store) emit(c Change) {
	for _, fn := range s.listeners {
		fn(c)
	}
}
