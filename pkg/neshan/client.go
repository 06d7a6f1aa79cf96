// Package neshan is a client for the Neshan mapping and geocoding API.
// https://platform.neshan.org/api/getting-started
package neshan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/net/http/httpguts"

	"github.com/manzanit0/neshry/pkg/whttp"
)

// DefaultBaseURL is the production host. Tests point the client at an
// httptest server through WithBaseURL.
const DefaultBaseURL = "https://api.neshan.org"

const userAgent = "neshry"

type Client struct {
	h       *http.Client
	baseURL string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.h = h }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a client for communicating with Neshan. The key travels in
// the Api-Key header on every request, so a key which isn't a valid
// header value is rejected here rather than on the first call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" || !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, fmt.Errorf("neshan: api key is not a valid header value")
	}

	c := &Client{h: whttp.NewLoggingClient(), baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}

	headers := http.Header{}
	headers.Set("Api-Key", apiKey)
	headers.Set("User-Agent", userAgent)

	// Shallow-copy so the caller's client isn't mutated.
	h := *c.h
	h.Transport = whttp.NewHeaderRoundTripper(h.Transport, headers)
	c.h = &h

	return c, nil
}

// Route finds route(s) from origin to destination.
//
// avoidTrafficZone and avoidOddEvenZone exclude routes crossing the
// respective municipal restriction zones. alternativePaths asks for
// alternative routes besides the primary one.
func (c *Client) Route(ctx context.Context, vehicle VehicleType, origin, destination Point, avoidTrafficZone, avoidOddEvenZone, alternativePaths bool) (*Routes, error) {
	q := url.Values{}
	q.Set("type", string(vehicle))
	q.Set("origin", formatPoint(origin))
	q.Set("destination", formatPoint(destination))
	q.Set("avoid_traffic_zone", strconv.FormatBool(avoidTrafficZone))
	q.Set("avoid_odd_even_zone", strconv.FormatBool(avoidOddEvenZone))
	q.Set("alternative", strconv.FormatBool(alternativePaths))

	var routes Routes
	if err := c.get(ctx, "/v3/direction", q, &routes); err != nil {
		return nil, err
	}

	return &routes, nil
}

// ReverseGeocode finds the postal address for the given point.
// https://platform.neshan.org/api/reverse-geocoding
func (c *Client) ReverseGeocode(ctx context.Context, point Point) (*PostalAddress, error) {
	q := url.Values{}
	q.Set("lat", formatCoordinate(point.Latitude))
	q.Set("lng", formatCoordinate(point.Longitude))

	var address PostalAddress
	if err := c.get(ctx, "/v2/reverse", q, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

// get issues the request and branches on status: 2xx bodies decode into
// out, anything else decodes into a ServiceError so the caller keeps the
// remote code and message.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s?%s", c.baseURL, path, q.Encode()), nil)
	if err != nil {
		return err
	}

	res, err := c.h.Do(req)
	if err != nil {
		return err
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var svcErr ServiceError
		if err := json.Unmarshal(body, &svcErr); err != nil {
			return &DecodeError{Status: res.StatusCode, err: err}
		}

		return &svcErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Status: res.StatusCode, err: err}
	}

	return nil
}

// formatPoint renders a point the way the directions endpoint expects
// it: latitude first.
func formatPoint(p Point) string {
	return fmt.Sprintf("%s,%s", formatCoordinate(p.Latitude), formatCoordinate(p.Longitude))
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
