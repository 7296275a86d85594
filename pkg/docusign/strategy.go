package docusign

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/docusign-oauth/pkg/logger"
)

// ErrStateNotFound is returned by a StateStore for unknown or expired states.
var ErrStateNotFound = errors.New("docusign: authorization state not found or expired")

// Strategy authenticates users against DocuSign with the OAuth 2.0
// authorization code grant. It is immutable after New and safe for
// concurrent use; every call to Authenticate keeps its data local.
type Strategy struct {
	cfg         Config
	transport   Transport
	httpClient  *http.Client
	states      StateStore
	verify      VerifyFunc
	skipProfile bool
	logger      *slog.Logger
}

// New validates cfg and returns a Strategy. Missing client credentials fail
// immediately with ErrMissingClientID or ErrMissingClientSecret.
func New(cfg Config, opts ...Option) (*Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Strategy{
		cfg:    cfg.withDefaults(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.transport == nil {
		s.transport = NewOAuth2Transport(s.cfg, s.httpClient)
	}
	s.logger = s.logger.With(logger.Component("docusign_strategy"), logger.Provider(ProviderName))

	return s, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(cfg Config, opts ...Option) *Strategy {
	s, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create docusign strategy: %v", err))
	}
	return s
}

// Name returns the strategy name, "docusign".
func (s *Strategy) Name() string {
	return ProviderName
}

// Config returns a copy of the resolved configuration.
func (s *Strategy) Config() Config {
	c := s.cfg
	c.Scopes = append([]string(nil), s.cfg.Scopes...)
	return c
}

// AuthorizationURL builds the redirect for opts using opts.State verbatim.
func (s *Strategy) AuthorizationURL(opts AuthOptions) string {
	return BuildAuthorizationURL(s.cfg, opts, opts.State)
}

// Authenticate runs one step of the authorization code flow for r.
//
// A request without callback parameters yields a redirect to DocuSign.
// A callback is checked for provider-reported errors first; otherwise the
// code is exchanged for a token and the user profile is fetched.
func (s *Strategy) Authenticate(ctx context.Context, r *http.Request, opts AuthOptions) Result {
	f := newFlow(s.logger)
	query := r.URL.Query()

	if !hasCallbackParams(query) {
		return s.redirect(ctx, f, opts)
	}
	f.fire(ctx, eventCallback)

	if cerr := ClassifyCallback(query); cerr != nil {
		if denied, ok := cerr.(*UserDeniedError); ok {
			f.fire(ctx, eventDeny)
			s.logger.InfoContext(ctx, "docusign authorization denied by user",
				slog.String("error_code", denied.ErrorCode),
				slog.String("reason", denied.Reason),
			)
			return s.failResult(f, FailInfo{
				Message:   denied.Message,
				ErrorCode: denied.ErrorCode,
				Reason:    denied.Reason,
			})
		}
		f.fire(ctx, eventReject)
		return s.errorResult(ctx, f, cerr)
	}

	if s.states != nil {
		if res, ok := s.checkState(ctx, f, query.Get(paramState)); !ok {
			return res
		}
	}

	f.fire(ctx, eventExchange)
	tok, cerr := s.exchange(ctx, query.Get(paramCode))
	if cerr != nil {
		f.fire(ctx, eventFail)
		return s.errorResult(ctx, f, cerr)
	}

	var profile *Profile
	if !s.skipProfile {
		f.fire(ctx, eventTokenIssued)
		profile, cerr = s.fetchProfile(ctx, tok.AccessToken)
		if cerr != nil {
			f.fire(ctx, eventFail)
			return s.errorResult(ctx, f, cerr)
		}
	}

	var user any
	if profile != nil {
		user = profile
	}
	if s.verify != nil {
		u, info, err := s.verify(ctx, tok, profile)
		switch {
		case err != nil:
			f.fire(ctx, eventVerifyFailed)
			return s.errorResult(ctx, f, err)
		case u == nil:
			f.fire(ctx, eventVerifyFailed)
			if info == nil {
				info = &FailInfo{}
			}
			return s.failResult(f, *info)
		}
		user = u
	}

	f.fire(ctx, eventComplete)
	if profile != nil {
		s.logger.DebugContext(ctx, "docusign authentication succeeded", logger.Subject(profile.Sub))
	}
	return Result{
		Action:  ActionSuccess,
		User:    user,
		Profile: profile,
		Token:   tok,
		Path:    f.path(),
	}
}

func (s *Strategy) redirect(ctx context.Context, f *flow, opts AuthOptions) Result {
	state := opts.State
	if s.states != nil {
		var err error
		state, err = generateState()
		if err != nil {
			f.fire(ctx, eventRedirectError)
			return s.errorResult(ctx, f, fmt.Errorf("failed to generate state: %w", err))
		}
		if err := s.states.Store(ctx, state, time.Now().Add(s.cfg.StateTTL)); err != nil {
			f.fire(ctx, eventRedirectError)
			return s.errorResult(ctx, f, fmt.Errorf("failed to store state: %w", err))
		}
	}

	f.fire(ctx, eventRedirect)
	return Result{
		Action:      ActionRedirect,
		RedirectURL: BuildAuthorizationURL(s.cfg, opts, state),
		Path:        f.path(),
	}
}

// checkState consumes the callback state. It returns ok=false with the
// terminal result when the state cannot be verified.
func (s *Strategy) checkState(ctx context.Context, f *flow, state string) (Result, bool) {
	if state == "" {
		f.fire(ctx, eventStateMismatch)
		return s.failResult(f, FailInfo{Message: MsgInvalidState}), false
	}
	if err := s.states.Consume(ctx, state); err != nil {
		f.fire(ctx, eventStateMismatch)
		if errors.Is(err, ErrStateNotFound) {
			return s.failResult(f, FailInfo{Message: MsgInvalidState}), false
		}
		return s.errorResult(ctx, f, fmt.Errorf("failed to verify state: %w", err)), false
	}
	return Result{}, true
}

func (s *Strategy) failResult(f *flow, info FailInfo) Result {
	return Result{Action: ActionFail, Info: &info, Path: f.path()}
}

func (s *Strategy) errorResult(ctx context.Context, f *flow, err error) Result {
	attrs := []any{logger.Error(err), logger.Stage(f.sm.Current().Name())}
	if kind := KindOf(err); kind != "" {
		attrs = append(attrs, logger.ErrorKind(string(kind)))
	}
	var ioe *InternalOAuthError
	if errors.As(err, &ioe) && ioe.Cause != nil {
		attrs = append(attrs, slog.String("cause", ioe.Cause.Error()))
	}
	s.logger.WarnContext(ctx, "docusign authentication failed", attrs...)

	return Result{Action: ActionError, Err: err, Path: f.path()}
}

// generateState returns 32 random bytes, base64url encoded.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
