package statemachine

import "context"

// State is a named node of the machine.
type State interface {
	Name() string
}

// Event is a named trigger.
type Event interface {
	Name() string
}

// Action runs while a transition is applied. An error aborts the transition
// and the machine stays in its current state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides at fire time whether a transition may be taken.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition moves the machine from From to To when Event fires and every
// guard passes.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine is a finite state machine. States only move forward through
// Fire; there is no way back to the initial state.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, guards []Guard, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	// Final reports whether no transition leaves the current state.
	Final() bool
}

// StringState is a State named by its value.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event named by its value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
