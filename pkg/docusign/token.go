package docusign

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"
)

// MapTokenError classifies a failed code exchange. Already-classified errors
// are returned unchanged; DocuSign's error object becomes *APIError, the
// RFC 6749 shape becomes *TokenError, anything else *InternalOAuthError.
func MapTokenError(err error) ClassifiedError {
	if err == nil {
		return nil
	}
	if ce, ok := AsClassified(err); ok {
		return ce
	}

	var te *TransportError
	if errors.As(err, &te) && len(te.Body) > 0 {
		if apiErr := parseAPIError(te.Body, StageToken, te.StatusCode); apiErr != nil {
			return apiErr
		}
		if tokErr := parseTokenError(te.Body, te.StatusCode); tokErr != nil {
			return tokErr
		}
	}

	return &InternalOAuthError{Message: MsgFailedToFetchToken, Cause: err}
}

// exchange runs the code exchange and classifies its failure.
func (s *Strategy) exchange(ctx context.Context, code string) (*Token, ClassifiedError) {
	tok, err := s.transport.ExchangeCode(ctx, code, s.cfg.CallbackURL)
	if err != nil {
		return nil, MapTokenError(err)
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, &InternalOAuthError{
			Message: MsgFailedToFetchToken,
			Cause:   errors.New("token response missing access_token"),
		}
	}
	return tok, nil
}

// parseAPIError recognizes {"error":{"errorCode":"...","message":"..."}}.
func parseAPIError(body []byte, stage Stage, statusCode int) *APIError {
	root, ok := jsonObject(body)
	if !ok {
		return nil
	}
	obj := root.Get("error")
	if !obj.IsObject() {
		return nil
	}
	code := obj.Get("errorCode")
	msg := obj.Get("message")
	if code.Type != gjson.String || code.Str == "" || !msg.Exists() {
		return nil
	}

	apiErr := &APIError{
		Stage:      stage,
		Message:    msg.String(),
		ErrorCode:  code.Str,
		StatusCode: statusCode,
	}
	if sub := obj.Get("subcode"); sub.Exists() && sub.Type != gjson.Null {
		apiErr.Subcode = sub.String()
	}
	return apiErr
}

// parseTokenError recognizes {"error":"invalid_grant","error_description":"..."}.
func parseTokenError(body []byte, statusCode int) *TokenError {
	root, ok := jsonObject(body)
	if !ok {
		return nil
	}
	code := root.Get("error")
	if code.Type != gjson.String || code.Str == "" {
		return nil
	}
	return &TokenError{
		Message:    root.Get("error_description").String(),
		Code:       code.Str,
		URI:        root.Get("error_uri").String(),
		StatusCode: statusCode,
		Status:     http.StatusInternalServerError,
	}
}

// jsonObject returns the parsed body when it is a single valid JSON object.
func jsonObject(body []byte) (gjson.Result, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' || !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(body), true
}
