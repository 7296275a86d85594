// Package statemachine provides a small finite-state-machine used to track
// the progress of a single authentication attempt.
//
// States and events are minimal interfaces (Name() string); StringState and
// StringEvent cover the common case. A machine is configured with functional
// options, records every state it visits and refuses events once it reaches a
// state marked terminal with WithTerminal.
//
// # Usage
//
//	const (
//	    Start     = statemachine.StringState("start")
//	    Exchanged = statemachine.StringState("exchanged")
//	    Exchange  = statemachine.StringEvent("exchange")
//	)
//
//	machine := statemachine.MustNew(Start,
//	    statemachine.WithTransition(Start, Exchanged, Exchange),
//	    statemachine.WithTerminal(Exchanged),
//	)
//
//	_ = machine.Fire(ctx, Exchange, nil)
//	machine.Done() // true
//
// Guards veto a transition based on runtime data; actions run after all guards
// pass and before the state changes. WithActionOnAll attaches an action (for
// example a logger) to every transition defined so far.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//	if statemachine.IsTerminalStateError(err)        { /* ... */ }
//
// # Concurrency
//
// SimpleStateMachine guards its state with a RWMutex. Definitions passed to
// WithTransitions are copied, so a shared definition table can seed many
// machines concurrently.
package statemachine
