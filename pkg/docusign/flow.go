package docusign

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/docusign-oauth/pkg/logger"
	"github.com/dmitrymomot/docusign-oauth/pkg/statemachine"
)

// Flow states of one authentication attempt.
const (
	StateStart              = statemachine.StringState("start")
	StateRedirected         = statemachine.StringState("redirected")
	StateRedirectError      = statemachine.StringState("redirect_error")
	StateAwaitingCallback   = statemachine.StringState("awaiting_callback")
	StateDenied             = statemachine.StringState("denied")
	StateAuthorizationError = statemachine.StringState("authorization_error")
	StateStateMismatch      = statemachine.StringState("state_mismatch")
	StateExchanging         = statemachine.StringState("exchanging")
	StateTokenError         = statemachine.StringState("token_error")
	StateFetchingProfile    = statemachine.StringState("fetching_profile")
	StateProfileError       = statemachine.StringState("profile_error")
	StateVerifyFailed       = statemachine.StringState("verify_failed")
	StateSuccess            = statemachine.StringState("success")
)

const (
	eventRedirect      = statemachine.StringEvent("redirect")
	eventRedirectError = statemachine.StringEvent("redirect_error")
	eventCallback      = statemachine.StringEvent("callback")
	eventDeny          = statemachine.StringEvent("deny")
	eventReject        = statemachine.StringEvent("reject")
	eventStateMismatch = statemachine.StringEvent("state_mismatch")
	eventExchange      = statemachine.StringEvent("exchange")
	eventFail          = statemachine.StringEvent("fail")
	eventTokenIssued   = statemachine.StringEvent("token_issued")
	eventVerifyFailed  = statemachine.StringEvent("verify_failed")
	eventComplete      = statemachine.StringEvent("complete")
)

var flowTransitions = []statemachine.TransitionDef{
	{From: StateStart, To: StateRedirected, Event: eventRedirect},
	{From: StateStart, To: StateRedirectError, Event: eventRedirectError},
	{From: StateStart, To: StateAwaitingCallback, Event: eventCallback},
	{From: StateAwaitingCallback, To: StateDenied, Event: eventDeny},
	{From: StateAwaitingCallback, To: StateAuthorizationError, Event: eventReject},
	{From: StateAwaitingCallback, To: StateStateMismatch, Event: eventStateMismatch},
	{From: StateAwaitingCallback, To: StateExchanging, Event: eventExchange},
	{From: StateExchanging, To: StateTokenError, Event: eventFail},
	{From: StateExchanging, To: StateFetchingProfile, Event: eventTokenIssued},
	{From: StateExchanging, To: StateVerifyFailed, Event: eventVerifyFailed},
	{From: StateExchanging, To: StateSuccess, Event: eventComplete},
	{From: StateFetchingProfile, To: StateProfileError, Event: eventFail},
	{From: StateFetchingProfile, To: StateVerifyFailed, Event: eventVerifyFailed},
	{From: StateFetchingProfile, To: StateSuccess, Event: eventComplete},
}

var flowTerminals = []statemachine.State{
	StateRedirected,
	StateRedirectError,
	StateDenied,
	StateAuthorizationError,
	StateStateMismatch,
	StateTokenError,
	StateProfileError,
	StateVerifyFailed,
	StateSuccess,
}

// flow tracks a single attempt.
type flow struct {
	sm     statemachine.StateMachine
	logger *slog.Logger
}

func newFlow(l *slog.Logger) *flow {
	trace := func(ctx context.Context, from, to statemachine.State, event statemachine.Event, _ any) error {
		l.DebugContext(ctx, "docusign flow transition",
			slog.String("from", from.Name()),
			slog.String("to", to.Name()),
			logger.Event(event.Name()),
		)
		return nil
	}
	return &flow{
		sm: statemachine.MustNew(StateStart,
			statemachine.WithTransitions(flowTransitions),
			statemachine.WithTerminal(flowTerminals...),
			statemachine.WithActionOnAll(trace),
		),
		logger: l,
	}
}

// fire advances the flow. The transition table covers every call site, so a
// failure here is a programming error and is only logged.
func (f *flow) fire(ctx context.Context, event statemachine.Event) {
	if err := f.sm.Fire(ctx, event, nil); err != nil {
		f.logger.ErrorContext(ctx, "docusign flow transition rejected",
			logger.Event(event.Name()),
			logger.Error(err),
		)
	}
}

func (f *flow) path() []string {
	history := f.sm.History()
	out := make([]string, len(history))
	for i, s := range history {
		out[i] = s.Name()
	}
	return out
}
