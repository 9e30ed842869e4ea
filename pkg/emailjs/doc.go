// Package emailjs reads EmailJS account configuration from the environment
// and sends templates through the EmailJS REST API.
//
// # Configuration
//
// Four values identify where a contact message goes:
//
//	EMAILJS_SERVICE_ID   email service configured in the EmailJS dashboard
//	EMAILJS_TEMPLATE_ID  template that renders the message
//	EMAILJS_PUBLIC_KEY   account public key (sent as user_id)
//	EMAILJS_TO_EMAIL     destination address passed to the template
//
// The PUBLIC_EMAILJS_* names used by static site builds are accepted as
// fallbacks. Missing values load as empty strings; use Config.Valid to
// decide whether sending is possible:
//
//	cfg, err := emailjs.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	if !cfg.Valid() {
//	    log.Warn("emailjs is not configured", "config", cfg)
//	}
//
// Config implements slog.LogValuer and never logs the full public key.
//
// # Sending
//
// Client posts JSON to https://api.emailjs.com/api/v1.0/email/send:
//
//	client := emailjs.NewClient(emailjs.ClientConfig{Timeout: 10 * time.Second})
//	resp, err := client.Send(ctx, cfg.ServiceID, cfg.TemplateID, map[string]string{
//	    "from_name": "Ann",
//	    "message":   "Hi",
//	}, cfg.PublicKey)
//
// Send returns a Response for every HTTP answer, including 4xx and 5xx.
// An error is returned only when no answer was received, and it wraps
// ErrTransport. The relay answers 200 with the body "OK" on success.
//
// Non-browser access must be enabled for the account in the EmailJS
// dashboard. Accounts with "use private key" enabled also need
// EMAILJS_PRIVATE_KEY, forwarded as accessToken.
package emailjs
