package fastpix

import (
	"net/http"
	"time"
)

// Doer sends HTTP requests. *http.Client satisfies it; tests and callers
// with their own transport can swap it in with WithHTTPClient.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL        string
	timeout        time.Duration
	httpClient     Doer
	skipValidation bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
}

// WithBaseURL points the client at a different origin.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithoutValidation skips the credential check NewClient performs.
// Call Validate explicitly when the client should be verified later.
func WithoutValidation() Option {
	return func(o *clientOptions) {
		o.skipValidation = true
	}
}
