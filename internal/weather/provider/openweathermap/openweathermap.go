// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openweathermap fetches the current weather for a city from the OpenWeatherMap API.
package openweathermap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	stdhttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/city-weather/internal/http"
	"github.com/wneessen/city-weather/internal/vartype"
	"github.com/wneessen/city-weather/internal/weather"
)

const (
	name = "openweathermap"

	// APIEndpoint is the current weather endpoint of the OpenWeatherMap API
	APIEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	// APITimeout is the default timeout for a single API request
	APITimeout = time.Second * 10

	units          = "metric"
	successCode    = 200
	unknownMessage = "unknown error"
)

// OpenWeatherMap is the weather fetcher for the OpenWeatherMap current weather API. It only
// holds read-only configuration, so Fetch may be called concurrently.
type OpenWeatherMap struct {
	apikey   string
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// Option configures optional settings of the OpenWeatherMap fetcher.
type Option func(*OpenWeatherMap)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *OpenWeatherMap) {
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *OpenWeatherMap) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// apiCode is the "cod" field, which the API sends as a number on success and as a string
// on errors.
type apiCode int

type response struct {
	Cod     *apiCode        `json:"cod"`
	Message json.RawMessage `json:"message"`
	Coord   struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        *string `json:"main"`
		Description *string `json:"description"`
		Icon        string  `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Visibility *float64 `json:"visibility"`
	Wind       struct {
		Speed *float64 `json:"speed"`
		Deg   *float64 `json:"deg"`
		Gust  *float64 `json:"gust"`
	} `json:"wind"`
	Clouds struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country *string `json:"country"`
		Sunrise int64   `json:"sunrise"`
		Sunset  int64   `json:"sunset"`
	} `json:"sys"`
	Timezone *float64 `json:"timezone"`
	Name     *string  `json:"name"`
}

// New returns a new OpenWeatherMap fetcher. The API key is checked on every Fetch, not here,
// so a missing key surfaces as a weather.ConfigurationError.
func New(client *http.Client, apikey string, opts ...Option) (*OpenWeatherMap, error) {
	if client == nil {
		return nil, errors.New("http client is required")
	}
	owm := &OpenWeatherMap{
		apikey:   strings.TrimSpace(apikey),
		endpoint: APIEndpoint,
		timeout:  APITimeout,
		http:     client,
	}
	for _, opt := range opts {
		opt(owm)
	}
	return owm, nil
}

func (o *OpenWeatherMap) Name() string {
	return name
}

// Fetch retrieves the current weather for city with exactly one API request. The city is
// passed through unvalidated. Every returned error is a *weather.FetchError.
func (o *OpenWeatherMap) Fetch(ctx context.Context, city string) (weather.Report, error) {
	if o.apikey == "" || o.apikey == weather.PlaceholderAPIKey {
		return weather.Report{}, weather.NewError(weather.ConfigurationError,
			"no OpenWeatherMap API key configured", nil)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.apikey)
	query.Set("units", units)

	res, err := o.http.GetWithTimeout(ctx, o.endpoint, query, nil, o.timeout)
	if err != nil {
		return weather.Report{}, weather.NewError(weather.TransportError,
			fmt.Sprintf("failed to retrieve weather data from OpenWeatherMap API: %s", err), err)
	}
	if res.StatusCode >= stdhttp.StatusBadRequest {
		return weather.Report{}, statusError(res)
	}

	data := new(response)
	if err = json.Unmarshal(res.Body, data); err != nil {
		return weather.Report{}, &weather.FetchError{
			Kind:       weather.DecodeError,
			Message:    fmt.Sprintf("failed to decode JSON response: %s", err),
			StatusCode: res.StatusCode,
			Body:       res.Body,
			Err:        err,
		}
	}
	if data.Cod == nil || int(*data.Cod) != successCode {
		apiErr := &weather.FetchError{
			Kind:    weather.APIError,
			Message: unknownMessage,
			Body:    res.Body,
		}
		if data.Cod != nil {
			apiErr.StatusCode = int(*data.Cod)
		}
		if msg := message(data.Message); msg != "" {
			apiErr.Message = msg
		}
		return weather.Report{}, apiErr
	}

	return data.report(res.Body)
}

// report maps the raw API response to a weather.Report. A success response that lacks any of
// the required fields is treated as a schema mismatch.
func (r *response) report(body []byte) (weather.Report, error) {
	var missing []string
	if len(r.Weather) == 0 {
		missing = append(missing, "weather[0].main", "weather[0].description")
	} else {
		if r.Weather[0].Main == nil {
			missing = append(missing, "weather[0].main")
		}
		if r.Weather[0].Description == nil {
			missing = append(missing, "weather[0].description")
		}
	}
	required := []struct {
		path    string
		present bool
	}{
		{"main.temp", r.Main.Temp != nil},
		{"main.feels_like", r.Main.FeelsLike != nil},
		{"main.humidity", r.Main.Humidity != nil},
		{"wind.speed", r.Wind.Speed != nil},
		{"name", r.Name != nil},
		{"sys.country", r.Sys.Country != nil},
	}
	for _, field := range required {
		if !field.present {
			missing = append(missing, field.path)
		}
	}
	if len(missing) > 0 {
		return weather.Report{}, &weather.FetchError{
			Kind:       weather.DecodeError,
			Message:    "response is missing required fields: " + strings.Join(missing, ", "),
			StatusCode: stdhttp.StatusOK,
			Body:       body,
		}
	}

	report := weather.Report{
		Condition:      *r.Weather[0].Main,
		Description:    *r.Weather[0].Description,
		Temperature:    *r.Main.Temp,
		FeelsLike:      *r.Main.FeelsLike,
		Humidity:       int(math.Round(*r.Main.Humidity)),
		WindSpeed:      *r.Wind.Speed,
		City:           *r.Name,
		Country:        *r.Sys.Country,
		Latitude:       vartype.FromPointer(r.Coord.Lat),
		Longitude:      vartype.FromPointer(r.Coord.Lon),
		Pressure:       roundedInt(r.Main.Pressure),
		Visibility:     roundedInt(r.Visibility),
		WindDirection:  roundedInt(r.Wind.Deg),
		WindGust:       vartype.FromPointer(r.Wind.Gust),
		Cloudiness:     roundedInt(r.Clouds.All),
		TimezoneOffset: roundedInt(r.Timezone),
		IconCode:       r.Weather[0].Icon,
		ObservedAt:     unixTime(r.Dt),
		Sunrise:        unixTime(r.Sys.Sunrise),
		Sunset:         unixTime(r.Sys.Sunset),
	}
	return report, nil
}

func (c *apiCode) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid API code %s: %w", string(b), err)
	}
	*c = apiCode(code)
	return nil
}

// statusError builds the HTTPStatusError for res, including the provider's message if the
// error body is JSON.
func statusError(res *http.Response) *weather.FetchError {
	msg := fmt.Sprintf("OpenWeatherMap API returned HTTP status %d %s", res.StatusCode,
		stdhttp.StatusText(res.StatusCode))
	var data struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(res.Body, &data); err == nil {
		if apiMsg := message(data.Message); apiMsg != "" {
			msg += ": " + apiMsg
		}
	}
	return &weather.FetchError{
		Kind:       weather.HTTPStatusError,
		Message:    msg,
		StatusCode: res.StatusCode,
		Body:       res.Body,
	}
}

// message returns the provider message, which is usually a string but not guaranteed to be.
func message(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}
	return string(raw)
}

func roundedInt(val *float64) vartype.VarInt {
	if val == nil {
		return vartype.VarInt{}
	}
	return vartype.NewVariable(int(math.Round(*val)))
}

func unixTime(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
