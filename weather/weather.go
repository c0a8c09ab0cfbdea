// Package weather defines the shaped observation and forecast data the
// dashboard widgets render, and the provider interface the app consumes.
// Real network providers live outside this repo; the built-in static
// provider keeps the dashboard usable offline.
package weather

import (
	"context"
	"time"
)

// City is one of the fixed dashboard cities.
type City struct {
	ID      string
	Name    string
	Station string // primary observation station identifier
}

// Cities is the fixed set the dashboard supports, in display order.
var Cities = []City{
	{ID: "nyc", Name: "New York", Station: "KNYC"},
	{ID: "chi", Name: "Chicago", Station: "KMDW"},
	{ID: "mia", Name: "Miami", Station: "KMIA"},
	{ID: "aus", Name: "Austin", Station: "KAUS"},
	{ID: "den", Name: "Denver", Station: "KDEN"},
	{ID: "lax", Name: "Los Angeles", Station: "KLAX"},
	{ID: "phl", Name: "Philadelphia", Station: "KPHL"},
}

// CityByID returns the city with the given ID and whether it exists.
func CityByID(id string) (City, bool) {
	for _, c := range Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// NextCity returns the city after id in display order, wrapping around.
func NextCity(id string) City {
	for i, c := range Cities {
		if c.ID == id {
			return Cities[(i+1)%len(Cities)]
		}
	}
	return Cities[0]
}

// Current holds the latest observation for a city.
type Current struct {
	TempF         float64
	DewpointF     float64
	Conditions    string
	WindMPH       float64
	WindDir       string
	HumidityPct   int
	PressureMB    float64
	PressureTrend string // "rising", "falling", "steady"
	VisibilityMi  float64
	ObservedAt    time.Time
}

// ModelForecast is one forecast model's high/low call for today.
type ModelForecast struct {
	Model string // e.g. "GFS", "ECMWF", "NAM", "HRRR"
	HighF float64
	LowF  float64
}

// Alert is an active warning or advisory.
type Alert struct {
	Event    string
	Headline string
	Severity string // "minor", "moderate", "severe", "extreme"
	Expires  time.Time
}

// StationObs is a nearby station's latest reading.
type StationObs struct {
	Station    string
	Name       string
	DistanceMi float64
	TempF      float64
	Conditions string
}

// Discussion is the forecast office's narrative discussion.
type Discussion struct {
	Office string
	Issued time.Time
	Text   string
}

// Snapshot aggregates everything the widgets need for one city.
type Snapshot struct {
	City       City
	Current    Current
	Models     []ModelForecast
	Alerts     []Alert
	Nearby     []StationObs
	Discussion Discussion
	Sunrise    time.Time
	Sunset     time.Time
	FetchedAt  time.Time
}

// Provider supplies snapshots. Implementations may block on the network;
// they must honor ctx cancellation.
type Provider interface {
	Snapshot(ctx context.Context, city City) (*Snapshot, error)
}
