// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather holds the provider independent weather report and the typed fetch errors.
package weather

import (
	"time"

	"github.com/wneessen/city-weather/internal/vartype"
)

// PlaceholderAPIKey is the credential shipped in sample configurations. It is never a valid key.
const PlaceholderAPIKey = "YOUR_API_KEY"

// Report is the current weather for one city. Temperatures are in °C and speeds in m/s.
// A Report is created once per successful fetch and treated as read-only afterwards.
type Report struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	City        string  `json:"city"`
	Country     string  `json:"country"`

	// Optional values, only set if the provider sent them
	Latitude       vartype.VarFloat64 `json:"latitude"`
	Longitude      vartype.VarFloat64 `json:"longitude"`
	Pressure       vartype.VarInt     `json:"pressure"`
	Visibility     vartype.VarInt     `json:"visibility"`
	WindDirection  vartype.VarInt     `json:"wind_direction"`
	WindGust       vartype.VarFloat64 `json:"wind_gust"`
	Cloudiness     vartype.VarInt     `json:"cloudiness"`
	TimezoneOffset vartype.VarInt     `json:"timezone_offset"`
	IconCode       string             `json:"icon,omitempty"`
	ObservedAt     time.Time          `json:"observed_at,omitzero"`
	Sunrise        time.Time          `json:"sunrise,omitzero"`
	Sunset         time.Time          `json:"sunset,omitzero"`
}

// HasCoordinates reports whether the provider returned the location of the weather station.
func (r Report) HasCoordinates() bool {
	return r.Latitude.IsSet() && r.Longitude.IsSet()
}

// Location returns the time zone of the reported city, falling back to UTC if the provider
// did not send an offset.
func (r Report) Location() *time.Location {
	if !r.TimezoneOffset.IsSet() {
		return time.UTC
	}
	return time.FixedZone("", r.TimezoneOffset.Value())
}
