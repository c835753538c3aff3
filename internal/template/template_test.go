// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package template

import (
	"strings"
	"testing"
	"time"

	"github.com/wneessen/city-weather/internal/config"
	"github.com/wneessen/city-weather/internal/presenter"
	"github.com/wneessen/city-weather/internal/vartype"
	"github.com/wneessen/city-weather/internal/weather"
)

var testReport = weather.Report{
	Condition:   "Clouds",
	Description: "overcast clouds",
	Temperature: 15.2,
	FeelsLike:   14.5,
	Humidity:    80,
	WindSpeed:   3.1,
	City:        "London",
	Country:     "GB",
	Pressure:    vartype.NewVariable(1018),
	IconCode:    "04d",
}

func TestNew(t *testing.T) {
	t.Run("new template succeeds", func(t *testing.T) {
		tpl, err := New(testConfig(t))
		if err != nil {
			t.Fatalf("failed to create template: %s", err)
		}
		if tpl == nil || tpl.Text == nil {
			t.Fatal("expected template to be non-nil")
		}
	})
	t.Run("parsing text template fails", func(t *testing.T) {
		conf := testConfig(t)
		conf.Templates.Text = "{{ .Data }"
		if _, err := New(conf); err == nil {
			t.Error("expected template parsing to fail")
		}
	})
	t.Run("unknown template function fails", func(t *testing.T) {
		conf := testConfig(t)
		conf.Templates.Text = "{{ fahrenheit .Current.Temperature }}"
		if _, err := New(conf); err == nil {
			t.Error("expected template parsing to fail")
		}
	})
}

func TestTemplates_Render(t *testing.T) {
	t.Run("default template renders the weather summary", func(t *testing.T) {
		tpl, err := New(testConfig(t))
		if err != nil {
			t.Fatalf("failed to create template: %s", err)
		}
		ctx := presenter.New().BuildContext(testReport, time.Now())
		got, err := tpl.Render(ctx)
		if err != nil {
			t.Fatalf("failed to render template: %s", err)
		}
		want := "--- Current Weather in London, GB ---\n" +
			"Weather: Clouds (overcast clouds)\n" +
			"Temperature: 15.2°C\n" +
			"Feels like: 14.5°C\n" +
			"Humidity: 80%\n" +
			"Wind Speed: 3.1 m/s\n"
		if got != want {
			t.Errorf("unexpected rendered template:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})
	t.Run("whole numbers keep one decimal place", func(t *testing.T) {
		tpl, err := New(testConfig(t))
		if err != nil {
			t.Fatalf("failed to create template: %s", err)
		}
		whole := testReport
		whole.Temperature, whole.FeelsLike, whole.WindSpeed = 20, -3, 5
		got, err := tpl.Render(presenter.New().BuildContext(whole, time.Now()))
		if err != nil {
			t.Fatalf("failed to render template: %s", err)
		}
		for _, line := range []string{"Temperature: 20.0°C\n", "Feels like: -3.0°C\n", "Wind Speed: 5.0 m/s\n"} {
			if !strings.Contains(got, line) {
				t.Errorf("expected rendered template to contain %q, got:\n%s", line, got)
			}
		}
	})
	t.Run("template functions are available", func(t *testing.T) {
		conf := testConfig(t)
		conf.Templates.Text = `{{title .Current.Description}}|{{floatFormat .Current.Temperature 0}}|` +
			`{{opt .Current.Pressure " hPa"}}|{{opt .Current.Visibility "m"}}|{{uc .Current.Country}}|` +
			`{{lc .Current.City}}`
		tpl, err := New(conf)
		if err != nil {
			t.Fatalf("failed to create template: %s", err)
		}
		got, err := tpl.Render(presenter.New().BuildContext(testReport, time.Now()))
		if err != nil {
			t.Fatalf("failed to render template: %s", err)
		}
		want := "Overcast Clouds|15|1018 hPa|n/a|GB|london"
		if got != want {
			t.Errorf("expected rendered template to be %q, got %q", want, got)
		}
	})
	t.Run("rendering with missing field fails", func(t *testing.T) {
		conf := testConfig(t)
		conf.Templates.Text = "{{ .Current.Nonexistent }}"
		tpl, err := New(conf)
		if err != nil {
			t.Fatalf("failed to create template: %s", err)
		}
		if _, err = tpl.Render(presenter.New().BuildContext(testReport, time.Now())); err == nil {
			t.Error("expected rendering to fail")
		}
	})
}

func TestTemplates_humanTime(t *testing.T) {
	tpl, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("failed to create template: %s", err)
	}
	t.Run("zero time", func(t *testing.T) {
		if got := tpl.humanTime(time.Time{}); got != "-" {
			t.Errorf("expected zero time to render as %q, got %q", "-", got)
		}
	})
	t.Run("past time", func(t *testing.T) {
		got := tpl.humanTime(time.Now().Add(-time.Hour * 3))
		if !strings.Contains(got, "ago") {
			t.Errorf("expected relative past time, got %q", got)
		}
	})
}

func TestTimeFormat(t *testing.T) {
	if got := timeFormat(time.Time{}, "15:04"); got != "-" {
		t.Errorf("expected zero time to render as %q, got %q", "-", got)
	}
	val := time.Date(2026, 1, 18, 7, 1, 2, 0, time.UTC)
	if got := timeFormat(val, "15:04"); got != "07:01" {
		t.Errorf("expected time to render as %q, got %q", "07:01", got)
	}
}

func TestFloatFormat(t *testing.T) {
	tests := []struct {
		val       float64
		precision int
		want      string
	}{
		{14.62, 1, "14.6"},
		{14.65, 0, "15"},
		{-2.26, 1, "-2.3"},
		{3, 2, "3.00"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := floatFormat(tc.val, tc.precision); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{20, "20.0"},
		{14.62, "14.62"},
		{-0.5, "-0.5"},
		{0, "0.0"},
		{1013.25, "1013.25"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := decimal(tc.val); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEmojiWithSpace(t *testing.T) {
	tests := []struct {
		name  string
		emoji string
		want  string
	}{
		{"wide emoji", "🌕", "🌕 "},
		{"narrow character", "x", "x  "},
		{"empty string", "", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EmojiWithSpace(tc.emoji); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.New()
	if err != nil {
		t.Fatalf("failed to create config: %s", err)
	}
	return conf
}
