package docusign

import (
	"net/http"
	"net/url"
	"strconv"
)

// Callback query parameters DocuSign uses to report errors.
const (
	paramCode             = "code"
	paramState            = "state"
	paramError            = "error"
	paramErrorCode        = "error_code"
	paramErrorDescription = "error_description"
	paramErrorReason      = "error_reason"

	errAccessDenied = "access_denied"
)

// ClassifyCallback inspects callback query parameters for provider-reported
// errors. It returns nil when the callback carries none, in which case the
// authorization code may be exchanged.
//
// A user refusing consent yields *UserDeniedError. An error_code without
// access_denied, or any other error value, yields *AuthorizationError.
func ClassifyCallback(query url.Values) ClassifiedError {
	errParam := query.Get(paramError)
	errCode := query.Get(paramErrorCode)
	description := query.Get(paramErrorDescription)
	reason := query.Get(paramErrorReason)

	if errParam == errAccessDenied {
		msg := description
		if msg == "" {
			msg = MsgAccessDenied
		}
		return &UserDeniedError{
			Message:   msg,
			ErrorCode: errCode,
			Reason:    reason,
		}
	}

	if errCode == "" && errParam == "" {
		return nil
	}

	code, _ := strconv.Atoi(errCode)
	return &AuthorizationError{
		Message:    description,
		Code:       code,
		RawCode:    errCode,
		OAuthError: errParam,
		Reason:     reason,
		Status:     http.StatusInternalServerError,
	}
}

// hasCallbackParams reports whether the request is a return from the provider.
func hasCallbackParams(query url.Values) bool {
	return query.Get(paramCode) != "" || query.Get(paramError) != "" || query.Get(paramErrorCode) != ""
}
