package whttp

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HeaderRoundTripper attaches a fixed set of headers to every outbound
// request. It's the transport-level equivalent of a session configured
// with default headers, which keeps credentials out of query strings.
type HeaderRoundTripper struct {
	Proxied http.RoundTripper
	Headers http.Header
}

func NewHeaderRoundTripper(proxied http.RoundTripper, headers http.Header) HeaderRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}

	return HeaderRoundTripper{Proxied: proxied, Headers: headers}
}

func (hrt HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, vv := range hrt.Headers {
		req.Header[k] = vv
	}

	return hrt.Proxied.RoundTrip(req)
}

// LoggingRoundTripper logs every outbound request and its response body.
// Credentials travel in headers, which aren't logged, so URLs are safe
// to print as-is.
type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	slog.InfoContext(req.Context(), "outbound request",
		"http.request.method", req.Method,
		"http.request.url", req.URL.String())

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.ErrorContext(req.Context(), "outbound request failed", "error", err.Error())
		return res, err
	}

	b := bytes.NewBuffer(make([]byte, 0))
	reader := io.TeeReader(res.Body, b)

	body, _ := io.ReadAll(reader)
	slog.InfoContext(req.Context(), "outbound response",
		"http.response.status", res.Status,
		"http.response.body", string(body))

	res.Body.Close()
	res.Body = io.NopCloser(b)

	return res, nil
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}
