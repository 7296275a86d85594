package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine provides a thread-safe in-memory state machine implementation.
// Uses a nested map structure for O(1) transition lookups: [fromState][event][]Transition
type SimpleStateMachine struct {
	currentState State
	history      []State
	terminal     map[string]struct{}
	transitions  map[string]map[string][]Transition
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		currentState: initialState,
		history:      []State{initialState},
		terminal:     make(map[string]struct{}),
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) History() []State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]State, len(sm.history))
	copy(out, sm.history)
	return out
}

func (sm *SimpleStateMachine) Done() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.terminal[sm.currentState.Name()]
	return ok
}

func (sm *SimpleStateMachine) addTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	fromStateName := from.Name()
	if _, ok := sm.transitions[fromStateName]; !ok {
		sm.transitions[fromStateName] = make(map[string][]Transition)
	}

	// Multiple transitions allowed for same from/event to support guard-based branching
	sm.transitions[fromStateName][event.Name()] = append(sm.transitions[fromStateName][event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  append([]Guard(nil), guards...),
		Actions: append([]Action(nil), actions...),
	})
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	currentStateName := sm.currentState.Name()
	eventName := event.Name()

	if _, ok := sm.terminal[currentStateName]; ok {
		return &ErrTerminalState{StateName: currentStateName, EventName: eventName}
	}

	transitions := sm.transitions[currentStateName][eventName]
	if len(transitions) == 0 {
		return &ErrNoTransitionAvailable{StateName: currentStateName, EventName: eventName}
	}

	// First transition with passing guards wins
	validTransition := sm.firstAllowed(ctx, transitions, event, data)
	if validTransition == nil {
		return &ErrTransitionRejected{StateName: currentStateName, EventName: eventName}
	}

	for _, action := range validTransition.Actions {
		if action != nil {
			if err := action(ctx, sm.currentState, validTransition.To, event, data); err != nil {
				return fmt.Errorf("action failed: %w", err)
			}
		}
	}

	sm.currentState = validTransition.To
	sm.history = append(sm.history, validTransition.To)
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if _, ok := sm.terminal[sm.currentState.Name()]; ok {
		return false
	}
	transitions := sm.transitions[sm.currentState.Name()][event.Name()]
	return sm.firstAllowed(ctx, transitions, event, data) != nil
}

func (sm *SimpleStateMachine) firstAllowed(ctx context.Context, transitions []Transition, event Event, data any) *Transition {
	for i, t := range transitions {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, sm.currentState, event, data) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return &transitions[i]
		}
	}
	return nil
}
