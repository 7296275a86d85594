// Package logger builds *slog.Logger instances for the strategy and its hosts.
//
// New accepts functional options selecting the output format, level and
// destination, static attributes and ContextExtractor callbacks that pull
// request-scoped values (such as a request id) out of context.Context on every
// record. Attribute helpers in attr.go keep key names consistent: Error,
// Component, Provider, Stage, ErrorKind, Subject, RequestID.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "docusign-login"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.WarnContext(ctx, "authentication failed",
//	    logger.Provider("docusign"),
//	    logger.ErrorKind("provider_api"),
//	)
package logger
