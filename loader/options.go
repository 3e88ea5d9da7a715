package loader

import (
	"io"
	"net/http"
	"time"

	"github.com/erraggy/oasflat/flatten"
)

// Defaults applied by New.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 10 * 1024 * 1024
)

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the HTTP client timeout for URL sources.
// Zero or negative values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.Timeout = d
		}
	}
}

// WithMaxBytes limits how many bytes are read from any source.
// Zero or negative values keep the default.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.MaxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent header for URL sources.
func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		l.UserAgent = ua
	}
}

// WithHTTPClient sets a custom HTTP client for URL sources.
// When set, WithTimeout and WithInsecureSkipVerify are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.HTTPClient = client
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for URL sources.
func WithInsecureSkipVerify(enabled bool) Option {
	return func(l *Loader) {
		l.InsecureSkipVerify = enabled
	}
}

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.Stdin = r
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(logger flatten.Logger) Option {
	return func(l *Loader) {
		l.Logger = logger
	}
}
