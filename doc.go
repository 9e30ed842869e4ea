// Package relayform serves contact forms that deliver messages through
// the EmailJS relay.
//
// The root package re-exports the application core: App, Router, Context
// and their options. The contact behavior lives in pkg/contactform, the
// relay client and its configuration in pkg/emailjs, and the HTTP surface
// in handlers and views.
//
//	ctrl := contactform.New(emailjsCfg, emailjs.NewClient(clientCfg), contactform.WithLogger(log))
//	app := relayform.New(
//		relayform.WithLogger(log),
//		relayform.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//		relayform.WithHandlers(handlers.NewContact(ctrl, inflight.NewMemory())),
//		relayform.WithHealthChecks(
//			relayform.WithReadinessCheck("emailjs", handlers.EmailJSCheck(emailjsCfg)),
//		),
//	)
//	err := app.Run(":8080", relayform.ShutdownTimeout(10*time.Second))
package relayform
