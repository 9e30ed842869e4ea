// Package logger builds the process slog.Logger.
//
// Records go to stdout as JSON (or text with LOG_FORMAT=text) at LOG_LEVEL.
// Context extractors add request-scoped attributes such as the request ID
// on every call:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "contact message sent")
//	// {"level":"INFO","msg":"contact message sent","request_id":"..."}
//
// With SENTRY_DSN set, errors also create Sentry issues and warnings are
// stored as Sentry logs. A failed Sentry init falls back to stdout only.
package logger
