// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	// ConfigurationError means no usable credential is configured. No request was sent.
	ConfigurationError Kind = iota + 1
	// TransportError means the request did not produce an HTTP response.
	TransportError
	// HTTPStatusError means the provider answered with a 4xx or 5xx status.
	HTTPStatusError
	// DecodeError means the response body was not the expected JSON document.
	DecodeError
	// APIError means the provider reported a failure in the cod field of the payload.
	APIError
)

func (k Kind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration error"
	case TransportError:
		return "transport error"
	case HTTPStatusError:
		return "http status error"
	case DecodeError:
		return "decode error"
	case APIError:
		return "api error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// FetchError is the error returned for every failed fetch.
type FetchError struct {
	Kind    Kind
	Message string
	// StatusCode is the HTTP status for HTTPStatusError and the API code for APIError.
	StatusCode int
	// Body holds the raw response body for diagnostics, if one was received.
	Body []byte
	Err  error
}

func (e *FetchError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches any FetchError of the same Kind, so errors.Is(err, &FetchError{Kind: APIError})
// works without comparing messages.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// NewError returns a FetchError of the given kind.
func NewError(kind Kind, msg string, err error) *FetchError {
	return &FetchError{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the Kind of the first FetchError in err's chain.
func KindOf(err error) (Kind, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind, true
	}
	return 0, false
}
