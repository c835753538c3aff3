// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/wneessen/city-weather/internal/logger"
)

const (
	// DefaultTimeout is the default timeout value for the HTTPClient
	DefaultTimeout = time.Second * 10

	// MaxBodySize limits how much of a response body is read into memory
	MaxBodySize = 1 << 20
)

var (
	// version is the version of the application (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent that the HTTP client sends with API requests
	UserAgent = fmt.Sprintf("Mozilla/5.0 (%s; %s) city-weather/%s (+https://github.com/wneessen/city-weather/)",
		runtime.GOOS,
		runtime.GOARCH,
		version,
	)

	ErrNilResponse = errors.New("nil response received")

	// ErrBodyTooLarge is returned when a response body exceeds MaxBodySize
	ErrBodyTooLarge = fmt.Errorf("response body exceeds %d bytes", MaxBodySize)
)

// Client is a type wrapper for the Go stdlib http.Client and the logger
type Client struct {
	*http.Client
	logger *logger.Logger
}

// Response holds the status, headers and the fully read body of an HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New returns a new HTTP client. Request deadlines are set per call by GetWithTimeout.
func New(logger *logger.Logger) *Client {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	httpTransport := &http.Transport{TLSClientConfig: tlsConfig, Proxy: http.ProxyFromEnvironment}
	httpClient := &http.Client{Transport: httpTransport}
	return &Client{httpClient, logger}
}

// Get performs a HTTP GET request for the given URL with the default timeout
func (h *Client) Get(ctx context.Context, endpoint string, query url.Values, headers map[string]string) (*Response, error) {
	return h.GetWithTimeout(ctx, endpoint, query, headers, DefaultTimeout)
}

// GetWithTimeout performs a HTTP GET request for the given URL and timeout and returns the
// response with its body read into memory. Any status code is returned as a Response, only
// transport level failures result in an error.
func (h *Client) GetWithTimeout(ctx context.Context, endpoint string, query url.Values, headers map[string]string, timeout time.Duration) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Prepare URL and query parameters
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	// Prepare HTTP request
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed create new HTTP request with context: %w", err)
	}
	request.Header.Set("User-Agent", UserAgent)
	request.Header.Set("Accept", "application/json")
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	// Execute HTTP request
	response, err := h.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	if response == nil {
		return nil, ErrNilResponse
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error("failed to close HTTP response body", logger.Err(err))
		}
	}(response.Body)

	body, err := io.ReadAll(io.LimitReader(response.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read HTTP response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	h.logger.Debug("HTTP request performed", slog.String("host", reqURL.Host),
		slog.Int("status", response.StatusCode), slog.Int("size", len(body)))

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       body,
	}, nil
}
