package docusign

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// StateStore keeps issued OAuth state values between the redirect and the
// callback. Consume must be atomic and must return an error matching
// ErrStateNotFound for unknown, expired or already consumed values.
type StateStore interface {
	Store(ctx context.Context, state string, expiresAt time.Time) error
	Consume(ctx context.Context, state string) error
}

// VerifyFunc lets the host turn an authenticated DocuSign identity into its
// own user. Returning a nil user with a nil error fails the attempt with info;
// a non-nil error is delivered through the error channel unchanged.
type VerifyFunc func(ctx context.Context, token *Token, profile *Profile) (user any, info *FailInfo, err error)

// Option configures a Strategy during construction.
type Option func(*Strategy)

// WithLogger configures the logger for the strategy.
func WithLogger(l *slog.Logger) Option {
	return func(s *Strategy) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTransport replaces the golang.org/x/oauth2 transport.
func WithTransport(t Transport) Option {
	return func(s *Strategy) {
		s.transport = t
	}
}

// WithHTTPClient sets the client used by the default transport.
// Ignored when WithTransport is also given.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Strategy) {
		s.httpClient = c
	}
}

// WithStateStore enables CSRF protection through the OAuth state parameter.
func WithStateStore(store StateStore) Option {
	return func(s *Strategy) {
		s.states = store
	}
}

// WithVerify registers the host verification hook.
func WithVerify(fn VerifyFunc) Option {
	return func(s *Strategy) {
		s.verify = fn
	}
}

// WithSkipUserProfile completes the attempt right after the code exchange.
func WithSkipUserProfile(skip bool) Option {
	return func(s *Strategy) {
		s.skipProfile = skip
	}
}
