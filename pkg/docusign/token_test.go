package docusign_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

func TestMapTokenError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, docusign.MapTokenError(nil))
	})

	t.Run("provider api error", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.MapTokenError(&docusign.TransportError{
			StatusCode: 400,
			Body:       []byte(partnerAuthFailedBody),
		})
		require.NotNil(t, cerr)
		assert.Equal(t, docusign.KindProviderAPI, cerr.Kind())

		apiErr, ok := cerr.(*docusign.APIError)
		require.True(t, ok)
		assert.Equal(t, docusign.StageToken, apiErr.Stage)
		assert.Equal(t, partnerAuthFailedMsg, apiErr.Message)
		assert.Equal(t, "PARTNER_AUTHENTICATION_FAILED", apiErr.ErrorCode)
		assert.Empty(t, apiErr.Subcode)
		assert.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("provider api error with subcode", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.MapTokenError(&docusign.TransportError{
			StatusCode: 401,
			Body:       []byte(`{"error":{"errorCode":"USER_LACKS_PERMISSIONS","message":"Denied","subcode":"42"}}`),
		})
		apiErr, ok := cerr.(*docusign.APIError)
		require.True(t, ok)
		assert.Equal(t, "42", apiErr.Subcode)
	})

	t.Run("standard token error", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.MapTokenError(&docusign.TransportError{
			StatusCode: 400,
			Body:       []byte(`{"error":"invalid_grant","error_description":"The authorization code is invalid."} `),
		})
		require.NotNil(t, cerr)
		assert.Equal(t, docusign.KindStandardToken, cerr.Kind())

		tokErr, ok := cerr.(*docusign.TokenError)
		require.True(t, ok)
		assert.Equal(t, "invalid_grant", tokErr.Code)
		assert.Equal(t, "The authorization code is invalid.", tokErr.Message)
		assert.Equal(t, 500, tokErr.Status)
		assert.Equal(t, 400, tokErr.StatusCode)
	})

	t.Run("standard token error without description", func(t *testing.T) {
		t.Parallel()

		cerr := docusign.MapTokenError(&docusign.TransportError{Body: []byte(`{"error":"invalid_client"}`)})
		tokErr, ok := cerr.(*docusign.TokenError)
		require.True(t, ok)
		assert.Equal(t, "invalid_client", tokErr.Error())
	})

	fallbacks := []struct {
		name string
		err  error
	}{
		{name: "network failure", err: errors.New("connection refused")},
		{name: "html body", err: &docusign.TransportError{StatusCode: 502, Body: []byte("<html>Bad Gateway</html>")}},
		{name: "empty body", err: &docusign.TransportError{StatusCode: 500}},
		{name: "error object without code", err: &docusign.TransportError{StatusCode: 400, Body: []byte(`{"error":{"message":"x"}}`)}},
		{name: "empty error string", err: &docusign.TransportError{StatusCode: 400, Body: []byte(`{"error":""}`)}},
	}

	for _, tt := range fallbacks {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cerr := docusign.MapTokenError(tt.err)
			require.NotNil(t, cerr)
			assert.Equal(t, docusign.KindInternalOAuth, cerr.Kind())
			assert.Equal(t, docusign.MsgFailedToFetchToken, cerr.Error())
			assert.ErrorIs(t, cerr, tt.err)
		})
	}

	t.Run("classified errors pass through", func(t *testing.T) {
		t.Parallel()

		orig := &docusign.TokenError{Code: "invalid_grant"}
		assert.Same(t, orig, docusign.MapTokenError(orig))
	})
}
