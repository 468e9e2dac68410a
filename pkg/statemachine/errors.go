package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: nil event")
	ErrNilInitialState   = errors.New("statemachine: nil initial state")

	// ErrNoTransition is wrapped by every *ErrNoTransitionAvailable.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrRejected is wrapped by every *ErrTransitionRejected.
	ErrRejected = errors.New("statemachine: transition rejected")
)

// ErrNoTransitionAvailable reports an event fired in a state that has no
// transition for it, such as a second fade of the same toast.
type ErrNoTransitionAvailable struct {
	State string
	Event string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("%v: state %q has none for event %q", ErrNoTransition, e.State, e.Event)
}

func (e *ErrNoTransitionAvailable) Unwrap() error { return ErrNoTransition }

// ErrTransitionRejected reports that guards vetoed every candidate transition.
type ErrTransitionRejected struct {
	State string
	Event string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("%v: guards refused event %q in state %q", ErrRejected, e.Event, e.State)
}

func (e *ErrTransitionRejected) Unwrap() error { return ErrRejected }

func IsNoTransitionAvailableError(err error) bool {
	return errors.Is(err, ErrNoTransition)
}

func IsTransitionRejectedError(err error) bool {
	return errors.Is(err, ErrRejected)
}
