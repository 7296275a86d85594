package docusign_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

func TestResult_Deliver(t *testing.T) {
	t.Parallel()

	profile := &docusign.Profile{Sub: "abc"}
	hardErr := errors.New("boom")

	tests := []struct {
		name   string
		result docusign.Result
		method string
		args   []any
	}{
		{
			name:   "redirect",
			result: docusign.Result{Action: docusign.ActionRedirect, RedirectURL: "https://example.com"},
			method: "Redirect",
			args:   []any{"https://example.com"},
		},
		{
			name:   "success",
			result: docusign.Result{Action: docusign.ActionSuccess, User: "user-1", Profile: profile},
			method: "Success",
			args:   []any{"user-1", profile},
		},
		{
			name:   "fail",
			result: docusign.Result{Action: docusign.ActionFail, Info: &docusign.FailInfo{Message: "Permissions error"}},
			method: "Fail",
			args:   []any{docusign.FailInfo{Message: "Permissions error"}},
		},
		{
			name:   "fail without info",
			result: docusign.Result{Action: docusign.ActionFail},
			method: "Fail",
			args:   []any{docusign.FailInfo{}},
		},
		{
			name:   "error",
			result: docusign.Result{Action: docusign.ActionError, Err: hardErr},
			method: "Error",
			args:   []any{hardErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			host := &MockHost{}
			host.On(tt.method, tt.args...).Return().Once()

			tt.result.Deliver(host)

			host.AssertExpectations(t)
			assert.Len(t, host.Calls, 1)
		})
	}
}

func TestResult_State(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docusign.Result{}.State())
	assert.Equal(t, "success", docusign.Result{Path: []string{"start", "awaiting_callback", "success"}}.State())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docusign.KindOf(nil))
	assert.Empty(t, docusign.KindOf(errors.New("plain")))
	assert.Equal(t, docusign.KindParse, docusign.KindOf(&docusign.ParseError{Message: docusign.MsgFailedToParseProfile}))

	wrapped := errors.Join(errors.New("context"), &docusign.UserDeniedError{Message: "no"})
	ce, ok := docusign.AsClassified(wrapped)
	assert.True(t, ok)
	assert.Equal(t, docusign.KindUserDenied, ce.Kind())
}
