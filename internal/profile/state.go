// Onboarding state machine:
//
//	AWAITING_CV ──► AWAITING_MODE ──► AWAITING_LOCATION ──► ACTIVE
//	                      │                                   ▲
//	                      └──────────── (remote) ─────────────┘
//
// A user answering "remote" has no location step. ACTIVE is the only
// state the scheduler sweeps.
package profile

import "fmt"

// State names one step of the onboarding conversation.
type State string

const (
	StateAwaitingCV       State = "awaiting_cv"
	StateAwaitingMode     State = "awaiting_mode"
	StateAwaitingLocation State = "awaiting_location"
	StateActive           State = "active"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[State][]State{
	StateAwaitingCV:       {StateAwaitingMode},
	StateAwaitingMode:     {StateAwaitingLocation, StateActive},
	StateAwaitingLocation: {StateActive},
	// ACTIVE is terminal for onboarding; a fresh CV upload refreshes
	// the profile in place, not via a transition.
}

// ParseState converts a stored string to a State, rejecting unknown values.
func ParseState(s string) (State, error) {
	st := State(s)
	switch st {
	case StateAwaitingCV, StateAwaitingMode, StateAwaitingLocation, StateActive:
		return st, nil
	}
	return "", fmt.Errorf("unknown onboarding state %q", s)
}

// CanTransition returns true when moving from → to is permitted.
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Advance moves the profile to the next state, validating the edge.
func (p *Profile) Advance(to State) error {
	if !CanTransition(p.State, to) {
		return fmt.Errorf("invalid onboarding transition %s -> %s", p.State, to)
	}
	p.State = to
	return nil
}

// NextAfterMode picks the state that follows the work-mode answer.
func NextAfterMode(mode WorkMode) State {
	if mode.NeedsLocation() {
		return StateAwaitingLocation
	}
	return StateActive
}

// IsActive reports whether discovery runs for this state.
func (s State) IsActive() bool { return s == StateActive }
