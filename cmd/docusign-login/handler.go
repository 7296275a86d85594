package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
	"github.com/dmitrymomot/docusign-oauth/pkg/httpserver"
	"github.com/dmitrymomot/docusign-oauth/pkg/logger"
	"github.com/dmitrymomot/docusign-oauth/pkg/requestid"
)

// newRouter mounts the strategy routes. checks back the /healthz readiness
// probe; without them it reports liveness only.
func newRouter(strategy *docusign.Strategy, log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, checks...))

	authenticate := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		q := r.URL.Query()
		res := strategy.Authenticate(r.Context(), r, docusign.AuthOptions{
			Display:   q.Get("display"),
			AuthType:  q.Get("auth_type"),
			AuthNonce: q.Get("auth_nonce"),
		})
		res.Deliver(&responder{w: w, r: r, log: log})
		log.InfoContext(r.Context(), "docusign request handled",
			slog.String("action", string(res.Action)),
			logger.Stage(res.State()),
			logger.Duration(time.Since(start)),
		)
	}
	r.Get("/auth/docusign", authenticate)
	r.Get("/auth/docusign/callback", authenticate)

	return r
}

// responder writes a strategy result as an HTTP response.
type responder struct {
	w   http.ResponseWriter
	r   *http.Request
	log *slog.Logger
}

type errorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func (h *responder) Redirect(url string) {
	http.Redirect(h.w, h.r, url, http.StatusFound)
}

func (h *responder) Success(_ any, profile *docusign.Profile) {
	h.json(http.StatusOK, profile)
}

func (h *responder) Fail(info docusign.FailInfo) {
	h.json(http.StatusUnauthorized, errorBody{
		Error:     info.Message,
		ErrorCode: info.ErrorCode,
		Reason:    info.Reason,
	})
}

func (h *responder) Error(err error) {
	kind := docusign.KindOf(err)
	body := errorBody{Error: err.Error(), Kind: string(kind)}

	var apiErr *docusign.APIError
	if errors.As(err, &apiErr) {
		body.ErrorCode = apiErr.ErrorCode
	}
	if kind == "" {
		body.Error = http.StatusText(http.StatusInternalServerError)
	}
	h.json(statusFor(kind), body)
}

func (h *responder) json(status int, v any) {
	h.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	h.w.WriteHeader(status)
	if err := json.NewEncoder(h.w).Encode(v); err != nil {
		h.log.ErrorContext(h.r.Context(), "failed to write response", logger.Error(err))
	}
}

// statusFor maps an error kind to the response status. Upstream failures
// answer 502; authorization errors and unclassified errors answer 500.
func statusFor(kind docusign.Kind) int {
	switch kind {
	case docusign.KindProviderAPI, docusign.KindStandardToken, docusign.KindInternalOAuth, docusign.KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
