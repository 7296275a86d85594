package oauthstate

import (
	"errors"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

var (
	// ErrStateNotFound is returned by Consume for unknown, expired or already
	// consumed states. It is the same value the strategy checks for.
	ErrStateNotFound = docusign.ErrStateNotFound

	ErrEmptyState                   = errors.New("oauth state must not be empty")
	ErrStateExists                  = errors.New("oauth state already issued")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
