package docusign_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

func TestClassifyCallback(t *testing.T) {
	t.Parallel()

	t.Run("no error params", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, docusign.ClassifyCallback(url.Values{"code": {"abc"}, "state": {"s"}}))
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{
			"error":             {"access_denied"},
			"error_description": {"Permissions error"},
			"error_reason":      {"user_denied"},
		})
		require.NotNil(t, cerr)
		assert.Equal(t, docusign.KindUserDenied, cerr.Kind())

		denied, ok := cerr.(*docusign.UserDeniedError)
		require.True(t, ok)
		assert.Equal(t, "Permissions error", denied.Message)
		assert.Equal(t, "user_denied", denied.Reason)
	})

	t.Run("access denied without description", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{"error": {"access_denied"}, "error_code": {"200"}})
		require.NotNil(t, cerr)

		denied, ok := cerr.(*docusign.UserDeniedError)
		require.True(t, ok)
		assert.Equal(t, docusign.MsgAccessDenied, denied.Message)
		assert.Equal(t, "200", denied.ErrorCode)
	})

	t.Run("error code", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{"error_code": {"901"}})
		require.NotNil(t, cerr)
		assert.Equal(t, docusign.KindAuthorization, cerr.Kind())

		authErr, ok := cerr.(*docusign.AuthorizationError)
		require.True(t, ok)
		assert.Equal(t, 901, authErr.Code)
		assert.Equal(t, "901", authErr.RawCode)
		assert.Equal(t, 500, authErr.Status)
		assert.Equal(t, "docusign authorization error: code 901", authErr.Error())
	})

	t.Run("error code with description", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{
			"error_code":        {"901"},
			"error_description": {"Application not promoted"},
		})
		require.NotNil(t, cerr)
		assert.Equal(t, "Application not promoted", cerr.Error())
	})

	t.Run("non numeric error code", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{"error_code": {"abc"}})
		authErr, ok := cerr.(*docusign.AuthorizationError)
		require.True(t, ok)
		assert.Equal(t, 0, authErr.Code)
		assert.Equal(t, "abc", authErr.RawCode)
	})

	t.Run("other oauth error", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.ClassifyCallback(url.Values{"error": {"server_error"}})
		authErr, ok := cerr.(*docusign.AuthorizationError)
		require.True(t, ok)
		assert.Equal(t, "server_error", authErr.OAuthError)
		assert.Equal(t, 500, authErr.Status)
		assert.Equal(t, "docusign authorization error: server_error", authErr.Error())
	})
}
