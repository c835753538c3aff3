// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "CITYWEATHER"

	// MinWatchInterval is the shortest refresh interval allowed in watch mode
	MinWatchInterval = time.Minute

	OutputText = "text"
	OutputJSON = "json"

	DefaultTextTpl = "--- Current Weather in {{.Current.City}}, {{.Current.Country}} ---\n" +
		"Weather: {{.Current.Condition}} ({{.Current.Description}})\n" +
		"Temperature: {{decimal .Current.Temperature}}{{.Units.Temperature}}\n" +
		"Feels like: {{decimal .Current.FeelsLike}}{{.Units.Temperature}}\n" +
		"Humidity: {{.Current.Humidity}}{{.Units.Humidity}}\n" +
		"Wind Speed: {{decimal .Current.WindSpeed}} {{.Units.WindSpeed}}\n"
)

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	API struct {
		// The credential is checked by the weather fetcher, not by Validate
		Key      string        `fig:"key"`
		Endpoint string        `fig:"endpoint" default:"https://api.openweathermap.org/data/2.5/weather"`
		Timeout  time.Duration `fig:"timeout" default:"10s"`
	} `fig:"api"`

	Output struct {
		// Allowed values: text, json
		Format string `fig:"format" default:"text"`
	} `fig:"output"`

	Intervals struct {
		// Zero disables watch mode
		Watch time.Duration `fig:"watch" default:"0s"`
	} `fig:"intervals"`

	Templates struct {
		Text string `fig:"text"`
	} `fig:"templates"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Output.Format != OutputText && c.Output.Format != OutputJSON {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.API.Timeout)
	}
	if c.Intervals.Watch < 0 || (c.Intervals.Watch > 0 && c.Intervals.Watch < MinWatchInterval) {
		return fmt.Errorf("invalid watch interval: %s, must be 0 or at least %s", c.Intervals.Watch,
			MinWatchInterval)
	}
	if c.Templates.Text == "" {
		c.Templates.Text = DefaultTextTpl
	}

	return nil
}

// Find returns the directory and file name of the first config file found in the user's
// config directory, or empty strings if there is none.
func Find() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "city-weather", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
