// Package statemachine implements a small, concurrency-safe finite state
// machine.
//
// States and events are described by the State and Event interfaces;
// StringState and StringEvent cover the common case. Transitions may carry
// guards, which veto a transition, and actions, which run before the state
// changes and abort the transition when they fail.
//
// # Usage
//
//	const (
//	    Visible   = statemachine.StringState("visible")
//	    FadingOut = statemachine.StringState("fading_out")
//	    Fade      = statemachine.StringEvent("fade")
//	)
//
//	machine := statemachine.MustNew(Visible,
//	    statemachine.WithTransition(Visible, FadingOut, Fade),
//	)
//
//	_ = machine.Fire(context.Background(), Fade, nil)
//
// # Error Handling
//
// Fire returns *ErrNoTransitionAvailable when the current state has no
// transition for the event and *ErrTransitionRejected when every candidate
// transition was vetoed by a guard:
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
package statemachine
