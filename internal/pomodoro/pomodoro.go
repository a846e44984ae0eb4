// Package pomodoro is a work/break interval timer. It is fully decoupled
// from tasks: consumers subscribe to its event channel and decide for
// themselves what a completed session means.
package pomodoro

import (
	"errors"
	"sync"
	"time"

	"eisenhower-matrix/config"
)

// State of the timer.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Phase of the current interval.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

// EventKind discriminates channel events.
type EventKind string

const (
	EventTick            EventKind = "tick"
	EventSessionComplete EventKind = "sessionComplete"
)

// Event is emitted on every tick and on every phase completion.
type Event struct {
	Kind      EventKind
	Phase     Phase
	Remaining time.Duration
	// Sessions counts completed work phases since the last Reset.
	Sessions int
}

var (
	ErrNotRunning = errors.New("timer is not running")
	ErrNotPaused  = errors.New("timer is not paused")
)

// Status is a snapshot of the timer.
type Status struct {
	State     State
	Phase     Phase
	Remaining time.Duration
	Sessions  int
}

// Timer drives the interval state machine. Time advances only through Tick,
// which the owner calls from its own clock; the timer itself never sleeps.
type Timer struct {
	cfg config.PomodoroConfig

	mu        sync.Mutex
	state     State
	phase     Phase
	remaining time.Duration
	sessions  int
	events    chan Event
}

// New creates an idle timer. The event channel is buffered; slow consumers
// lose ticks rather than blocking the clock.
func New(cfg config.PomodoroConfig) *Timer {
	t := &Timer{
		cfg:    cfg,
		events: make(chan Event, 64),
	}
	t.resetLocked()
	return t
}

// Events returns the channel Tick and SessionComplete events arrive on.
func (t *Timer) Events() <-chan Event {
	return t.events
}

// Start begins (or restarts) the current phase from its full duration.
func (t *Timer) Start() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateIdle {
		t.remaining = t.phaseDuration(t.phase)
	}
	t.state = StateRunning
	return t.statusLocked()
}

// Pause freezes the remaining time.
func (t *Timer) Pause() (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return t.statusLocked(), ErrNotRunning
	}
	t.state = StatePaused
	return t.statusLocked(), nil
}

// Resume continues a paused phase.
func (t *Timer) Resume() (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePaused {
		return t.statusLocked(), ErrNotPaused
	}
	t.state = StateRunning
	return t.statusLocked(), nil
}

// Reset returns to an idle work phase and zeroes the session count.
func (t *Timer) Reset() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
	return t.statusLocked()
}

// Tick advances the timer by elapsed. When a phase runs out the timer emits
// SessionComplete, advances to the next phase and idles, waiting for Start.
func (t *Timer) Tick(elapsed time.Duration) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return t.statusLocked()
	}

	t.remaining -= elapsed
	if t.remaining > 0 {
		t.emit(Event{Kind: EventTick, Phase: t.phase, Remaining: t.remaining, Sessions: t.sessions})
		return t.statusLocked()
	}

	finished := t.phase
	if finished == PhaseWork {
		t.sessions++
	}
	t.emit(Event{Kind: EventSessionComplete, Phase: finished, Sessions: t.sessions})

	t.phase = t.nextPhase(finished)
	t.remaining = t.phaseDuration(t.phase)
	t.state = StateIdle
	return t.statusLocked()
}

// Status returns a snapshot.
func (t *Timer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

func (t *Timer) resetLocked() {
	t.state = StateIdle
	t.phase = PhaseWork
	t.remaining = t.phaseDuration(PhaseWork)
	t.sessions = 0
}

func (t *Timer) statusLocked() Status {
	return Status{
		State:     t.state,
		Phase:     t.phase,
		Remaining: t.remaining,
		Sessions:  t.sessions,
	}
}

func (t *Timer) nextPhase(finished Phase) Phase {
	if finished != PhaseWork {
		return PhaseWork
	}
	every := t.cfg.SessionsBeforeLongBreak
	if every > 0 && t.sessions%every == 0 {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

func (t *Timer) phaseDuration(p Phase) time.Duration {
	minutes := t.cfg.WorkMinutes
	switch p {
	case PhaseShortBreak:
		minutes = t.cfg.ShortBreakMinutes
	case PhaseLongBreak:
		minutes = t.cfg.LongBreakMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (t *Timer) emit(e Event) {
	select {
	case t.events <- e:
	default:
	}
}
