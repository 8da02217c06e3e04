// Package http provides the outbound HTTP client used for third-party APIs.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calls to external APIs such as the
// payment gateway. http.DefaultClient has no timeout, so callers always go
// through here.
//
//   - Proxy honours HTTP_PROXY and friends.
//   - Dial and TLS handshake are capped at 5s.
//   - timeout bounds the whole request including the body read.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
