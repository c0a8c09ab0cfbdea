package weather

import (
	"context"
	"fmt"
	"time"
)

// StaticProvider serves canned per-city data. It backs the dashboard when no
// network provider is wired in, and the tests.
type StaticProvider struct{}

// NewStaticProvider returns the built-in offline provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Snapshot returns the canned snapshot for the city. The context is accepted
// for interface compatibility; nothing blocks.
func (p *StaticProvider) Snapshot(_ context.Context, city City) (*Snapshot, error) {
	base, ok := staticConditions[city.ID]
	if !ok {
		return nil, fmt.Errorf("no data for city %q", city.ID)
	}

	now := time.Now()
	snap := &Snapshot{
		City:    city,
		Current: base,
		Models: []ModelForecast{
			{Model: "GFS", HighF: base.TempF + 6, LowF: base.TempF - 9},
			{Model: "ECMWF", HighF: base.TempF + 5, LowF: base.TempF - 8},
			{Model: "NAM", HighF: base.TempF + 7, LowF: base.TempF - 10},
			{Model: "HRRR", HighF: base.TempF + 6.5, LowF: base.TempF - 8.5},
		},
		Alerts:     staticAlerts[city.ID],
		Nearby:     staticNearby[city.ID],
		Discussion: staticDiscussion(city),
		Sunrise:    time.Date(now.Year(), now.Month(), now.Day(), 6, 12, 0, 0, now.Location()),
		Sunset:     time.Date(now.Year(), now.Month(), now.Day(), 19, 48, 0, 0, now.Location()),
		FetchedAt:  now,
	}
	snap.Current.ObservedAt = now.Add(-7 * time.Minute)
	return snap, nil
}

var staticConditions = map[string]Current{
	"nyc": {TempF: 71.2, DewpointF: 58.1, Conditions: "Partly Cloudy", WindMPH: 9, WindDir: "WSW", HumidityPct: 63, PressureMB: 1016.4, PressureTrend: "steady", VisibilityMi: 10},
	"chi": {TempF: 66.8, DewpointF: 52.3, Conditions: "Overcast", WindMPH: 14, WindDir: "NNE", HumidityPct: 59, PressureMB: 1019.1, PressureTrend: "rising", VisibilityMi: 9},
	"mia": {TempF: 88.5, DewpointF: 75.9, Conditions: "Scattered Thunderstorms", WindMPH: 11, WindDir: "ESE", HumidityPct: 71, PressureMB: 1013.0, PressureTrend: "falling", VisibilityMi: 7},
	"aus": {TempF: 93.1, DewpointF: 66.0, Conditions: "Sunny", WindMPH: 7, WindDir: "S", HumidityPct: 41, PressureMB: 1011.8, PressureTrend: "steady", VisibilityMi: 10},
	"den": {TempF: 78.4, DewpointF: 41.2, Conditions: "Clear", WindMPH: 5, WindDir: "NW", HumidityPct: 27, PressureMB: 1014.6, PressureTrend: "falling", VisibilityMi: 10},
	"lax": {TempF: 74.0, DewpointF: 60.5, Conditions: "Marine Layer", WindMPH: 8, WindDir: "W", HumidityPct: 64, PressureMB: 1015.2, PressureTrend: "steady", VisibilityMi: 6},
	"phl": {TempF: 72.6, DewpointF: 59.7, Conditions: "Mostly Sunny", WindMPH: 10, WindDir: "SW", HumidityPct: 61, PressureMB: 1016.9, PressureTrend: "rising", VisibilityMi: 10},
}

var staticAlerts = map[string][]Alert{
	"mia": {
		{Event: "Heat Advisory", Headline: "Heat index values up to 105 expected", Severity: "moderate", Expires: time.Now().Add(7 * time.Hour)},
		{Event: "Rip Current Statement", Headline: "High rip current risk through this evening", Severity: "minor", Expires: time.Now().Add(12 * time.Hour)},
	},
	"aus": {
		{Event: "Heat Advisory", Headline: "Triple digit heat through the weekend", Severity: "moderate", Expires: time.Now().Add(30 * time.Hour)},
	},
	"den": {
		{Event: "Red Flag Warning", Headline: "Critical fire weather conditions this afternoon", Severity: "severe", Expires: time.Now().Add(9 * time.Hour)},
	},
}

var staticNearby = map[string][]StationObs{
	"nyc": {
		{Station: "KLGA", Name: "LaGuardia", DistanceMi: 6.2, TempF: 72.0, Conditions: "Partly Cloudy"},
		{Station: "KJFK", Name: "Kennedy Intl", DistanceMi: 12.9, TempF: 70.1, Conditions: "Partly Cloudy"},
		{Station: "KEWR", Name: "Newark", DistanceMi: 10.3, TempF: 73.4, Conditions: "Hazy"},
	},
	"chi": {
		{Station: "KORD", Name: "O'Hare Intl", DistanceMi: 13.5, TempF: 65.9, Conditions: "Overcast"},
		{Station: "KPWK", Name: "Chicago Exec", DistanceMi: 18.1, TempF: 65.2, Conditions: "Overcast"},
	},
	"mia": {
		{Station: "KOPF", Name: "Opa-locka Exec", DistanceMi: 9.6, TempF: 89.1, Conditions: "Thunderstorm"},
		{Station: "KFLL", Name: "Fort Lauderdale", DistanceMi: 21.4, TempF: 87.3, Conditions: "Scattered Storms"},
	},
	"aus": {
		{Station: "KATT", Name: "Camp Mabry", DistanceMi: 7.8, TempF: 94.0, Conditions: "Sunny"},
	},
	"den": {
		{Station: "KBJC", Name: "Rocky Mountain Metro", DistanceMi: 16.7, TempF: 77.5, Conditions: "Clear"},
		{Station: "KAPA", Name: "Centennial", DistanceMi: 12.2, TempF: 76.8, Conditions: "Clear"},
	},
	"lax": {
		{Station: "KSMO", Name: "Santa Monica", DistanceMi: 5.9, TempF: 71.8, Conditions: "Marine Layer"},
		{Station: "KLGB", Name: "Long Beach", DistanceMi: 17.5, TempF: 75.6, Conditions: "Hazy Sun"},
	},
	"phl": {
		{Station: "KPNE", Name: "Northeast Philadelphia", DistanceMi: 11.0, TempF: 71.9, Conditions: "Mostly Sunny"},
	},
}

func staticDiscussion(city City) Discussion {
	return Discussion{
		Office: "NWS " + city.Name,
		Issued: time.Now().Add(-2 * time.Hour),
		Text: "SYNOPSIS... Surface high pressure remains in control through " +
			"midweek with a weak shortwave passing to the north tonight. " +
			"Expect seasonable temperatures with diurnal cumulus and light " +
			"onshore flow. The main forecast question remains the timing of " +
			"the frontal passage late Thursday, with guidance split between " +
			"the faster GFS solution and the slower ECMWF camp. Confidence " +
			"in the going high temperature forecast is above average given " +
			"strong model agreement through 48 hours.",
	}
}
