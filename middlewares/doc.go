// Package middlewares provides the request ID, panic recovery and deadline
// middleware used by the relayform server.
//
//	app := relayform.New(
//		relayform.WithLogger(logger.New(cfg.Log, middlewares.RequestIDExtractor())),
//		relayform.WithMiddleware(
//			middlewares.RequestID(),
//			middlewares.Recover(),
//		),
//	)
//
// Recover returns a *PanicError; the app error handler decides what to
// render. Timeout bounds the relay call of a contact submission.
package middlewares
