package core

import (
	"fmt"
	"time"
)

// Phase is the match lifecycle stage.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TerminalPolicy decides what a toggle does once the match has ended.
type TerminalPolicy uint8

const (
	// PolicyRestart loops Ended back to Playing with the score reset.
	PolicyRestart TerminalPolicy = iota
	// PolicyExit makes Ended final; the host is expected to shut down.
	PolicyExit
)

// String returns the config name of the policy.
func (p TerminalPolicy) String() string {
	switch p {
	case PolicyRestart:
		return "restart"
	case PolicyExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseTerminalPolicy converts a config name to a TerminalPolicy.
func ParseTerminalPolicy(s string) (TerminalPolicy, error) {
	switch s {
	case "restart", "":
		return PolicyRestart, nil
	case "exit":
		return PolicyExit, nil
	default:
		return PolicyRestart, fmt.Errorf("unknown terminal policy %q", s)
	}
}

// Clock supplies wall-clock timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Transition records one phase change produced by a toggle.
type Transition struct {
	From, To Phase
	At       time.Time     // Timestamp of the change
	Elapsed  time.Duration // Play time, set when entering PhaseEnded
	Restart  bool          // Ended -> Playing
}

// Machine is the NotStarted -> Playing -> Ended state machine.
type Machine struct {
	phase     Phase
	policy    TerminalPolicy
	clock     Clock
	startedAt time.Time
	endedAt   time.Time

	pausedAt time.Time     // Zero unless paused
	paused   time.Duration // Paused time in the current match
}

// NewMachine creates a machine in PhaseNotStarted.
func NewMachine(policy TerminalPolicy, clock Clock) *Machine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Machine{policy: policy, clock: clock}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Policy returns the terminal policy.
func (m *Machine) Policy() TerminalPolicy { return m.policy }

// StartedAt returns the start time of the current (or last) match.
func (m *Machine) StartedAt() time.Time { return m.startedAt }

// Terminal reports whether no further transition is possible.
func (m *Machine) Terminal() bool {
	return m.phase == PhaseEnded && m.policy == PolicyExit
}

// Elapsed returns play time so far, excluding paused time. It is frozen
// while paused and once the match has ended.
func (m *Machine) Elapsed() time.Duration {
	switch m.phase {
	case PhasePlaying:
		now := m.clock.Now()
		if m.Paused() {
			now = m.pausedAt
		}
		return m.playTime(now)
	case PhaseEnded:
		return m.playTime(m.endedAt)
	default:
		return 0
	}
}

func (m *Machine) playTime(at time.Time) time.Duration {
	d := at.Sub(m.startedAt) - m.paused
	if d < 0 {
		return 0
	}
	return d
}

// Paused reports whether the play clock is stopped.
func (m *Machine) Paused() bool { return !m.pausedAt.IsZero() }

// SetPaused stops or resumes the play clock. It only applies while playing.
func (m *Machine) SetPaused(on bool) {
	if m.phase != PhasePlaying || on == m.Paused() {
		return
	}
	now := m.clock.Now()
	if on {
		m.pausedAt = now
		return
	}
	if now.After(m.pausedAt) {
		m.paused += now.Sub(m.pausedAt)
	}
	m.pausedAt = time.Time{}
}

// Toggle applies the single toggle input. ok is false when the toggle has
// no effect (Ended under PolicyExit).
func (m *Machine) Toggle() (tr Transition, ok bool) {
	now := m.clock.Now()
	tr.From = m.phase

	switch m.phase {
	case PhaseNotStarted:
		m.start(now)
	case PhasePlaying:
		m.SetPaused(false)
		m.phase = PhaseEnded
		m.endedAt = now
		tr.Elapsed = m.playTime(now)
	case PhaseEnded:
		if m.policy != PolicyRestart {
			return tr, false
		}
		m.start(now)
		tr.Restart = true
	}

	tr.To = m.phase
	tr.At = now
	if tr.To == PhasePlaying {
		tr.At = m.startedAt
	}
	return tr, true
}

// start enters PhasePlaying. Start timestamps strictly increase even if the
// clock stalls or steps backwards.
func (m *Machine) start(now time.Time) {
	if !m.startedAt.IsZero() && !now.After(m.startedAt) {
		now = m.startedAt.Add(time.Nanosecond)
	}
	m.phase = PhasePlaying
	m.startedAt = now
	m.pausedAt = time.Time{}
	m.paused = 0
}
