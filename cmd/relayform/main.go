package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/relayform"
	"github.com/dmitrymomot/relayform/handlers"
	"github.com/dmitrymomot/relayform/middlewares"
	"github.com/dmitrymomot/relayform/pkg/config"
	"github.com/dmitrymomot/relayform/pkg/contactform"
	"github.com/dmitrymomot/relayform/pkg/emailjs"
	"github.com/dmitrymomot/relayform/pkg/inflight"
	"github.com/dmitrymomot/relayform/pkg/logger"
	"github.com/dmitrymomot/relayform/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("relayform stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(cfg.Logger, middlewares.RequestIDExtractor())

	relayCfg, err := emailjs.LoadConfig()
	if err != nil {
		return err
	}
	if !relayCfg.Valid() {
		log.Warn("email relay configuration is incomplete, submissions will fail",
			slog.Any("emailjs", relayCfg))
	}

	var (
		locker     inflight.Locker
		healthOpts = []relayform.HealthOption{relayform.WithReadinessCheck("emailjs", handlers.EmailJSCheck(relayCfg))}
		runOpts    = []relayform.RunOption{relayform.Logger(log), relayform.ShutdownTimeout(cfg.ShutdownTimeout)}
		lockerOpts = []inflight.Option{inflight.WithTTL(cfg.LockTTL)}
	)

	if cfg.Redis.Enabled() {
		client, err := redis.Open(context.Background(), cfg.Redis)
		if err != nil {
			return err
		}
		locker = inflight.NewRedis(client, lockerOpts...)
		healthOpts = append(healthOpts, relayform.WithReadinessCheck("redis", redis.Healthcheck(client)))
		runOpts = append(runOpts, relayform.ShutdownHook(redis.Shutdown(client)))
	} else {
		locker = inflight.NewMemory(lockerOpts...)
	}
	runOpts = append(runOpts, relayform.ShutdownHook(func(context.Context) error {
		return locker.Close()
	}))

	ctrl := contactform.New(relayCfg, emailjs.NewClient(cfg.EmailJS),
		contactform.WithLogger(log),
		contactform.WithSenderLabel(cfg.Contact.SenderLabel),
		contactform.WithButtonLabel(cfg.Contact.ButtonLabel),
		contactform.WithSendingLabel(cfg.Contact.SendingLabel),
		contactform.WithSenderCopy(cfg.Contact.SenderCopy),
	)

	app := relayform.New(
		relayform.WithLogger(log),
		relayform.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		relayform.WithHealthChecks(healthOpts...),
		relayform.WithHandlers(handlers.NewContactHandler(ctrl, locker,
			handlers.WithPageTitle(cfg.Contact.PageTitle),
			handlers.WithConsentRequired(cfg.Contact.RequireConsent),
		)),
	)

	return app.Run(cfg.Address, runOpts...)
}
