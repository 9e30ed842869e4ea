package main

import (
	"time"

	"github.com/dmitrymomot/relayform/pkg/emailjs"
	"github.com/dmitrymomot/relayform/pkg/logger"
	"github.com/dmitrymomot/relayform/pkg/redis"
)

type appConfig struct {
	Address         string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"20s"`
	LockTTL         time.Duration `env:"CONTACT_LOCK_TTL" envDefault:"30s"`

	Contact contactConfig
	Logger  logger.Config
	Redis   redis.Config
	EmailJS emailjs.ClientConfig
}

type contactConfig struct {
	PageTitle      string `env:"CONTACT_PAGE_TITLE" envDefault:"Contact us"`
	SenderLabel    string `env:"CONTACT_SENDER_LABEL" envDefault:"4DVista Team"`
	ButtonLabel    string `env:"CONTACT_BUTTON_LABEL" envDefault:"Contact us"`
	SendingLabel   string `env:"CONTACT_SENDING_LABEL" envDefault:"Sending..."`
	RequireConsent bool   `env:"CONTACT_REQUIRE_CONSENT" envDefault:"false"`
	SenderCopy     bool   `env:"CONTACT_SENDER_COPY" envDefault:"false"`
}
