package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is an in-memory state machine safe for concurrent use.
// Transitions are indexed as [fromState][event][]Transition.
type SimpleStateMachine struct {
	currentState State
	transitions  map[string]map[string][]Transition
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[from.Name()] = byEvent
	}

	// Several transitions per from/event pair allow guard-based branching.
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, err := sm.lookup(ctx, event, data)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.lookup(ctx, event, data)
	return err == nil
}

func (sm *SimpleStateMachine) Final() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for _, candidates := range sm.transitions[sm.currentState.Name()] {
		if len(candidates) > 0 {
			return false
		}
	}
	return true
}

// lookup returns the first transition whose guards all pass. Callers hold the lock.
func (sm *SimpleStateMachine) lookup(ctx context.Context, event Event, data any) (*Transition, error) {
	stateName := sm.currentState.Name()
	eventName := event.Name()

	candidates := sm.transitions[stateName][eventName]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{State: stateName, Event: eventName}
	}

	for i := range candidates {
		if sm.guardsPass(ctx, candidates[i].Guards, event, data) {
			return &candidates[i], nil
		}
	}

	return nil, &ErrTransitionRejected{State: stateName, Event: eventName}
}

func (sm *SimpleStateMachine) guardsPass(ctx context.Context, guards []Guard, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, sm.currentState, event, data) {
			return false
		}
	}
	return true
}
