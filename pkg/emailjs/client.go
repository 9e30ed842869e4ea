package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the EmailJS REST endpoint for sending a template.
const DefaultAPIURL = "https://api.emailjs.com/api/v1.0/email/send"

// maxResponseBody caps how much of the response text is kept.
const maxResponseBody = 4 << 10

// ClientConfig holds transport settings for the EmailJS REST API.
// Embed this in your app config for env parsing with caarlos0/env.
type ClientConfig struct {
	APIURL     string        `env:"EMAILJS_API_URL" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	PrivateKey string        `env:"EMAILJS_PRIVATE_KEY"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"15s"`
}

// Response is the relay's answer to a send request.
// Status is the HTTP status code; Text is the response body ("OK" on success).
type Response struct {
	Text   string
	Status int
}

// Client sends templates through the EmailJS REST API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	privateKey string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAPIURL overrides the send endpoint. Mostly useful in tests.
func WithAPIURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.apiURL = url
		}
	}
}

// WithPrivateKey sets the account private key sent as accessToken.
func WithPrivateKey(key string) Option {
	return func(c *Client) {
		c.privateKey = key
	}
}

// NewClient creates a Client from cfg. Options are applied after cfg.
func NewClient(cfg ClientConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiURL:     cfg.APIURL,
		privateKey: cfg.PrivateKey,
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type sendRequest struct {
	TemplateParams map[string]string `json:"template_params"`
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// Send delivers params through the given service and template.
//
// Every HTTP response is reported through Response with a nil error,
// whatever its status; interpreting the status is up to the caller.
// An error wrapping ErrTransport means no response was received.
func (c *Client) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) (Response, error) {
	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		TemplateParams: params,
		AccessToken:    c.privateKey,
	})
	if err != nil {
		return Response{}, errors.Join(ErrEncodeRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return Response{}, errors.Join(ErrTransport, err)
	}

	return Response{
		Status: resp.StatusCode,
		Text:   strings.TrimSpace(string(text)),
	}, nil
}
