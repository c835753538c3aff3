// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides shared helpers for the package tests.
package testhelper

import (
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

// envOnlineTests enables tests that talk to the real OpenWeatherMap API.
const envOnlineTests = "CITYWEATHER_ONLINE_TESTS"

// MockRoundTripper is a http.RoundTripper that hands every request to Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

// RoundTrip implements the http.RoundTripper interface.
func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// CountingRoundTripper is a MockRoundTripper that records how often it was called.
type CountingRoundTripper struct {
	Fn    func(*http.Request) (*http.Response, error)
	calls atomic.Int64
}

// RoundTrip implements the http.RoundTripper interface.
func (c *CountingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return c.Fn(req)
}

// Calls returns the number of performed round trips.
func (c *CountingRoundTripper) Calls() int64 {
	return c.calls.Load()
}

// Response returns a round trip function that answers with the given status code and body.
func Response(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	}
}

// FileResponse returns a round trip function that answers with the given status code and the
// content of the given file.
func FileResponse(t *testing.T, status int, file string) func(*http.Request) (*http.Response, error) {
	t.Helper()
	return func(*http.Request) (*http.Response, error) {
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}
		return &http.Response{
			StatusCode: status,
			Body:       data,
			Header:     make(http.Header),
		}, nil
	}
}

// PerformIntegrationTests skips the calling test unless online tests are enabled.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv(envOnlineTests) == "" {
		t.Skipf("skipping online API test, set %s to enable", envOnlineTests)
	}
}
