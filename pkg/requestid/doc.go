// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is short and made
// of letters, digits, '-' or '_'; anything else is replaced with a fresh UUID.
// The id is stored in the request context and echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// LoggerExtractor plugs the id into pkg/logger so every record written with a
// request context carries "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
