// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/wneessen/go-moonphase"

	"github.com/wneessen/city-weather/internal/weather"
)

// WeatherView wraps a weather report with presentation-related fields.
type WeatherView struct {
	weather.Report

	ConditionIcon string `json:"condition_icon"`
	IsDay         bool   `json:"is_day"`
}

// Units holds the display units of the metric report values.
type Units struct {
	Temperature   string
	WindSpeed     string
	Humidity      string
	Pressure      string
	Visibility    string
	WindDirection string
}

// MetricUnits are the units of every weather.Report.
var MetricUnits = Units{
	Temperature:   "°C",
	WindSpeed:     "m/s",
	Humidity:      "%",
	Pressure:      "hPa",
	Visibility:    "m",
	WindDirection: "°",
}

type TemplateContext struct {
	Current WeatherView
	Units   Units

	UpdateTime    time.Time
	SunriseTime   time.Time
	SunsetTime    time.Time
	MoonPhase     string
	MoonPhaseIcon string
}

type Presenter struct{}

func New() *Presenter {
	return &Presenter{}
}

// BuildContext prepares the template context for report as seen at time now. All times are
// converted into the time zone of the reported city.
func (p *Presenter) BuildContext(report weather.Report, now time.Time) TemplateContext {
	loc := report.Location()
	rise, set := p.sunTimes(report, now.In(loc))
	moon := moonphase.New(now)

	return TemplateContext{
		Current:       p.viewFromReport(report, now, rise, set),
		Units:         MetricUnits,
		UpdateTime:    now.In(loc),
		SunriseTime:   inLocation(rise, loc),
		SunsetTime:    inLocation(set, loc),
		MoonPhase:     moon.PhaseName(),
		MoonPhaseIcon: MoonPhaseIcon[moon.PhaseName()],
	}
}

func (p *Presenter) viewFromReport(report weather.Report, now, rise, set time.Time) WeatherView {
	isDay := p.isDay(report.IconCode, now, rise, set)
	return WeatherView{
		Report:        report,
		ConditionIcon: conditionIcon(report, isDay),
		IsDay:         isDay,
	}
}

// sunTimes returns the reported sunrise and sunset, or calculates them from the coordinates
// if the provider did not send them.
func (p *Presenter) sunTimes(report weather.Report, day time.Time) (time.Time, time.Time) {
	if !report.Sunrise.IsZero() && !report.Sunset.IsZero() {
		return report.Sunrise, report.Sunset
	}
	if !report.HasCoordinates() {
		return time.Time{}, time.Time{}
	}
	return sunrise.SunriseSunset(report.Latitude.Value(), report.Longitude.Value(),
		day.Year(), day.Month(), day.Day())
}

// isDay prefers the day/night suffix of the icon code over the sun times.
func (p *Presenter) isDay(icon string, now, rise, set time.Time) bool {
	if len(icon) == 3 {
		switch icon[2] {
		case 'd':
			return true
		case 'n':
			return false
		}
	}
	if rise.IsZero() || set.IsZero() {
		return true
	}
	return now.After(rise) && now.Before(set)
}

func conditionIcon(report weather.Report, isDay bool) string {
	if len(report.IconCode) >= 2 {
		if icons, ok := IconCodeIcons[report.IconCode[:2]]; ok {
			return icons[isDay]
		}
	}
	if icon, ok := ConditionIcons[report.Condition]; ok {
		return icon
	}
	return UnknownIcon
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(loc)
}
