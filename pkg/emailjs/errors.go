package emailjs

import "errors"

var (
	// ErrParseConfig indicates the environment could not be parsed into Config.
	ErrParseConfig = errors.New("emailjs: failed to parse config")

	// ErrEncodeRequest indicates the send payload could not be encoded.
	ErrEncodeRequest = errors.New("emailjs: failed to encode request")

	// ErrTransport indicates the request never produced an HTTP response
	// (dial failure, timeout, cancelled context).
	ErrTransport = errors.New("emailjs: transport failure")
)
