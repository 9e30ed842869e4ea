// Package health provides liveness and readiness HTTP handlers.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"emailjs": emailjsCheck,
//		"redis":   redis.Healthcheck(client),
//	}))
//
// Readiness checks run concurrently under one timeout (5s by default).
// Handlers answer plain "OK" or "Service Unavailable"; send
// Accept: application/json or ?format=json for the per-check report.
package health
