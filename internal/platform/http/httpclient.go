package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout is used when the caller passes a non-positive timeout.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient creates an HTTP client for calls to the prediction service.
//
// Settings:
//   - Proxy: honours HTTP_PROXY and friends
//   - Dialer.Timeout: shorter TCP connect timeout than the default
//   - MaxIdleConnsPerHost: strokes hit a single host, so keep a few warm connections to it
//   - Client.Timeout: whole-request timeout passed by the caller
//
// http.DefaultClient has no timeout, and submissions are never cancelled
// by the caller, so the client timeout is what bounds a stuck request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
