package docusign

import (
	"context"
	"errors"
	"net/http"
)

// UserProfile fetches and normalizes the profile of the user owning accessToken.
// Errors are always ClassifiedError values.
func (s *Strategy) UserProfile(ctx context.Context, accessToken string) (*Profile, error) {
	p, cerr := s.fetchProfile(ctx, accessToken)
	if cerr != nil {
		return nil, cerr
	}
	return p, nil
}

func (s *Strategy) fetchProfile(ctx context.Context, accessToken string) (*Profile, ClassifiedError) {
	body, _, err := s.transport.AuthenticatedGet(ctx, s.cfg.UserProfileURL, accessToken)
	if err != nil {
		return nil, mapProfileError(err)
	}

	if apiErr := parseAPIError(body, StageProfile, http.StatusOK); apiErr != nil {
		return nil, apiErr
	}

	p, err := ParseProfile(body)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: err}
	}
	return p, nil
}

// mapProfileError classifies a failed userinfo call.
func mapProfileError(err error) ClassifiedError {
	if ce, ok := AsClassified(err); ok {
		return ce
	}
	var te *TransportError
	if errors.As(err, &te) && len(te.Body) > 0 {
		if apiErr := parseAPIError(te.Body, StageProfile, te.StatusCode); apiErr != nil {
			return apiErr
		}
	}
	return &InternalOAuthError{Message: MsgFailedToFetchProfile, Cause: err}
}
