// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/wneessen/city-weather/internal/config"
	"github.com/wneessen/city-weather/internal/http"
	"github.com/wneessen/city-weather/internal/job"
	"github.com/wneessen/city-weather/internal/logger"
	"github.com/wneessen/city-weather/internal/presenter"
	"github.com/wneessen/city-weather/internal/template"
	"github.com/wneessen/city-weather/internal/weather"
	"github.com/wneessen/city-weather/internal/weather/provider/openweathermap"
)

const watchJobName = "weather_watch_job"

// Exit codes of the command line tool, one per weather.Kind
const (
	ExitOK = iota
	ExitFailure
	ExitConfiguration
	ExitTransport
	ExitHTTPStatus
	ExitDecode
	ExitAPI
)

// Fetcher retrieves the current weather for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (weather.Report, error)
}

type Service struct {
	config    *config.Config
	fetcher   Fetcher
	logger    *logger.Logger
	presenter *presenter.Presenter
	templates *template.Templates
	stdout    io.Writer
	stderr    io.Writer
	now       func() time.Time
}

// Option configures optional settings of the Service.
type Option func(*Service)

// WithFetcher replaces the default OpenWeatherMap fetcher.
func WithFetcher(fetcher Fetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithOutput sets the writers for the weather output and for failure messages.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Service) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

func New(conf *config.Config, log *logger.Logger, opts ...Option) (*Service, error) {
	tpls, err := template.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	service := &Service{
		config:    conf,
		logger:    log,
		presenter: presenter.New(),
		templates: tpls,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}

	if service.fetcher == nil {
		owm, err := openweathermap.New(http.New(log), conf.API.Key,
			openweathermap.WithEndpoint(conf.API.Endpoint),
			openweathermap.WithTimeout(conf.API.Timeout),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenWeatherMap fetcher: %w", err)
		}
		service.fetcher = owm
	}

	return service, nil
}

// Run prints the weather for city once, or, if a watch interval is configured, on every
// interval until ctx is cancelled. A failed update in watch mode is logged and the next
// interval is awaited, except for configuration errors, which end the watch.
func (s *Service) Run(ctx context.Context, city string) error {
	if s.config.Intervals.Watch <= 0 {
		return s.Once(ctx, city)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	watch := job.New(watchJobName, s.config.Intervals.Watch, func(jobCtx context.Context) {
		err := s.Once(jobCtx, city)
		if err == nil {
			return
		}
		if kind, ok := weather.KindOf(err); ok && kind == weather.ConfigurationError {
			cancel(err)
			return
		}
		s.logger.Error("failed to update weather", slog.String("city", city), logger.Err(err))
	})
	s.logger.Info("watching weather", slog.String("city", city),
		slog.Duration("interval", s.config.Intervals.Watch))
	if err := watch.Start(ctx); err != nil {
		return err
	}

	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

// Once fetches the weather for city and prints it. On failure a message is written to the
// error output and the fetch error is returned.
func (s *Service) Once(ctx context.Context, city string) error {
	report, err := s.fetcher.Fetch(ctx, city)
	if err != nil {
		s.printFailure(city, err)
		return err
	}
	s.logger.Debug("weather data fetched", slog.String("city", report.City),
		slog.String("country", report.Country))

	return s.printWeather(report)
}

// printWeather outputs the weather report to stdout, rendered with the configured template or
// encoded as JSON.
func (s *Service) printWeather(report weather.Report) error {
	tplCtx := s.presenter.BuildContext(report, s.now())

	if s.config.Output.Format == config.OutputJSON {
		if err := json.NewEncoder(s.stdout).Encode(tplCtx.Current); err != nil {
			return fmt.Errorf("failed to encode weather data: %w", err)
		}
		return nil
	}

	text, err := s.templates.Render(tplCtx)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(s.stdout, text); err != nil {
		return fmt.Errorf("failed to write weather data: %w", err)
	}
	return nil
}

func (s *Service) printFailure(city string, err error) {
	msg := err.Error()
	var fetchErr *weather.FetchError
	if errors.As(err, &fetchErr) {
		msg = fetchErr.Message
		attrs := []any{slog.String("kind", fetchErr.Kind.String()), logger.Err(err)}
		if len(fetchErr.Body) > 0 {
			attrs = append(attrs, slog.String("body", string(fetchErr.Body)))
		}
		s.logger.Debug("weather fetch failed", attrs...)
	}
	if _, werr := fmt.Fprintf(s.stderr, "Could not retrieve weather data for %s: %s\n", city, msg); werr != nil {
		s.logger.Error("failed to write failure message", logger.Err(werr))
	}
}

// ExitCode maps the result of Run to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	kind, ok := weather.KindOf(err)
	if !ok {
		return ExitFailure
	}
	switch kind {
	case weather.ConfigurationError:
		return ExitConfiguration
	case weather.TransportError:
		return ExitTransport
	case weather.HTTPStatusError:
		return ExitHTTPStatus
	case weather.DecodeError:
		return ExitDecode
	case weather.APIError:
		return ExitAPI
	default:
		return ExitFailure
	}
}
