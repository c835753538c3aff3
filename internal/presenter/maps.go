// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// IconCodeIcons maps the OpenWeatherMap icon group (icon code without the day/night suffix)
// to emoji icons for day (true) and night (false)
var IconCodeIcons = map[string]map[bool]string{
	"01": {true: "☀️", false: "🌙"},  // clear sky
	"02": {true: "🌤️", false: "☁️"}, // few clouds
	"03": {true: "⛅", false: "☁️"},  // scattered clouds
	"04": {true: "☁️", false: "☁️"}, // broken clouds
	"09": {true: "🌧️", false: "🌧️"}, // shower rain
	"10": {true: "🌦️", false: "🌧️"}, // rain
	"11": {true: "⛈️", false: "⛈️"}, // thunderstorm
	"13": {true: "🌨️", false: "🌨️"}, // snow
	"50": {true: "🌫️", false: "🌫️"}, // mist
}

// ConditionIcons maps the main weather condition to an emoji icon, used if the provider sent
// no icon code
var ConditionIcons = map[string]string{
	"Thunderstorm": "⛈️",
	"Drizzle":      "🌦️",
	"Rain":         "🌧️",
	"Snow":         "🌨️",
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Mist":         "🌫️",
	"Smoke":        "🌫️",
	"Haze":         "🌫️",
	"Dust":         "🌫️",
	"Fog":          "🌫️",
	"Sand":         "🌫️",
	"Ash":          "🌋",
	"Squall":       "💨",
	"Tornado":      "🌪️",
}

// UnknownIcon is shown for conditions without a matching icon
const UnknownIcon = "❓"
