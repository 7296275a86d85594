package docusign

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration errors returned by New.
var (
	ErrMissingClientID     = errors.New("docusign: client id is required")
	ErrMissingClientSecret = errors.New("docusign: client secret is required")
)

// Fixed messages for errors raised by the strategy itself.
const (
	MsgFailedToFetchToken   = "Failed to fetch token"
	MsgFailedToFetchProfile = "Failed to fetch user profile"
	MsgFailedToParseProfile = "Failed to parse user profile"
	MsgAccessDenied         = "Access denied"
	MsgInvalidState         = "Invalid authorization request state."
)

// Kind discriminates classified errors.
type Kind string

const (
	KindUserDenied    Kind = "user_denied"
	KindAuthorization Kind = "authorization"
	KindProviderAPI   Kind = "provider_api"
	KindStandardToken Kind = "standard_token"
	KindInternalOAuth Kind = "internal_oauth"
	KindParse         Kind = "parse"
)

// ClassifiedError is implemented by every error the strategy produces after
// classifying a provider or transport signal. The set of implementations is
// closed: UserDeniedError, AuthorizationError, APIError, TokenError,
// InternalOAuthError and ParseError.
type ClassifiedError interface {
	error
	Kind() Kind
	classified()
}

// AsClassified reports whether err (or anything it wraps) is a classified error.
func AsClassified(err error) (ClassifiedError, bool) {
	var ce ClassifiedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// KindOf returns the kind of a classified error, or an empty Kind.
func KindOf(err error) Kind {
	if ce, ok := AsClassified(err); ok {
		return ce.Kind()
	}
	return ""
}

// UserDeniedError is the recoverable outcome of a user refusing consent.
// The strategy reports it through the fail channel, never as an error.
type UserDeniedError struct {
	Message   string
	ErrorCode string
	Reason    string
}

func (e *UserDeniedError) Error() string { return e.Message }
func (e *UserDeniedError) Kind() Kind    { return KindUserDenied }
func (e *UserDeniedError) classified()   {}

// AuthorizationError is raised when DocuSign reports an operational condition
// on the callback (for example an application that is not yet promoted to
// production). Status is always 500.
type AuthorizationError struct {
	Message string
	// Code is the numeric error_code query parameter, zero when absent or not numeric.
	Code int
	// RawCode keeps the error_code query parameter verbatim.
	RawCode string
	// OAuthError is the error query parameter when the provider sent one.
	OAuthError string
	Reason     string
	Status     int
}

func (e *AuthorizationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.OAuthError != "" {
		return fmt.Sprintf("docusign authorization error: %s", e.OAuthError)
	}
	return fmt.Sprintf("docusign authorization error: code %s", e.RawCode)
}
func (e *AuthorizationError) Kind() Kind  { return KindAuthorization }
func (e *AuthorizationError) classified() {}

// Stage identifies which call an APIError originated from.
type Stage string

const (
	StageToken   Stage = "token"
	StageProfile Stage = "profile"
)

// APIError is DocuSign's own error shape:
//
//	{"error": {"errorCode": "...", "message": "...", "subcode": "..."}}
type APIError struct {
	Stage      Stage
	Message    string
	ErrorCode  string
	Subcode    string
	StatusCode int
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Kind() Kind    { return KindProviderAPI }
func (e *APIError) classified()   {}

// TokenError is the RFC 6749 section 5.2 error shape:
//
//	{"error": "invalid_grant", "error_description": "..."}
type TokenError struct {
	Message    string
	Code       string
	URI        string
	StatusCode int
	Status     int
}

func (e *TokenError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
func (e *TokenError) Kind() Kind  { return KindStandardToken }
func (e *TokenError) classified() {}

// InternalOAuthError wraps a transport-level failure.
type InternalOAuthError struct {
	Message string
	Cause   error
}

// Error returns the fixed call-site message; the cause is reachable through
// errors.Unwrap and is logged separately.
func (e *InternalOAuthError) Error() string { return e.Message }
func (e *InternalOAuthError) Unwrap() error { return e.Cause }
func (e *InternalOAuthError) Kind() Kind    { return KindInternalOAuth }
func (e *InternalOAuthError) classified()   {}

// ParseError reports a successfully transported body that is not a
// recognizable user profile.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string { return e.Message }
func (e *ParseError) Unwrap() error { return e.Cause }
func (e *ParseError) Kind() Kind    { return KindParse }
func (e *ParseError) classified()   {}

// TransportError is the failure shape of the Transport collaborator. Either
// StatusCode/Body describe an HTTP response the transport refused, or Err
// carries a lower-level failure (network, timeout, malformed token response).
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("docusign: http %d: %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return "docusign: " + e.Err.Error()
	default:
		return fmt.Sprintf("docusign: unexpected response %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

var (
	_ ClassifiedError = (*UserDeniedError)(nil)
	_ ClassifiedError = (*AuthorizationError)(nil)
	_ ClassifiedError = (*APIError)(nil)
	_ ClassifiedError = (*TokenError)(nil)
	_ ClassifiedError = (*InternalOAuthError)(nil)
	_ ClassifiedError = (*ParseError)(nil)
)
