package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docusign-oauth/pkg/logger"
	"github.com/dmitrymomot/docusign-oauth/pkg/requestid"
)

func serveWithID(t *testing.T, header string) (fromCtx string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/auth/docusign", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return fromCtx, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()

		id, rec := serveWithID(t, "")
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps valid ids", func(t *testing.T) {
		t.Parallel()

		for _, valid := range []string{
			"abc123",
			"docusign_callback-1",
			"0b8b8c6e-7a3c-4a50-9d0e-5d0c6e1b2a11",
		} {
			id, rec := serveWithID(t, valid)
			assert.Equal(t, valid, id)
			assert.Equal(t, valid, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()

		for _, invalid := range []string{
			"with space",
			"state=abc&code=123",
			"<script>alert(1)</script>",
			"line\nbreak",
			strings.Repeat("a", 129),
		} {
			id, rec := serveWithID(t, invalid)
			assert.NotEqual(t, invalid, id)
			assert.Len(t, id, 36)
			assert.Equal(t, id, rec.Header().Get(requestid.Header))
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "req-1", requestid.FromContext(requestid.WithContext(context.Background(), "req-1")))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "with id")
	log.InfoContext(context.Background(), "without id")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "req-42", first["request_id"])
	assert.NotContains(t, second, "request_id")
}
