package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

const sampleOMeteoResponse = `{
	"current_weather": {
		"temperature": 27.3,
		"windspeed": 11.2,
		"weathercode": 2,
		"time": "2025-01-18T12:00"
	},
	"daily": {
		"time": ["2025-01-18", "2025-01-19", "2025-01-20", "2025-01-21", "2025-01-22"],
		"temperature_2m_max": [30.1, 29.4, 28.0, 27.5, 31.2],
		"temperature_2m_min": [19.5, 18.9, 18.2, 17.8, 20.0],
		"precipitation_sum": [1.2, 0.0, 4.5, 0.3, 0.0],
		"weathercode": [2, 0, 63, 51, 1]
	}
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInterpretWeatherCode(t *testing.T) {
	testCases := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{1, "Mainly Clear"},
		{2, "Partly Cloudy"},
		{3, "Cloudy"},
		{45, "Foggy"},
		{48, "Rime Fog"},
		{51, "Light Drizzle"},
		{61, "Light Rain"},
		{63, "Rain"},
		{65, "Heavy Rain"},
		{71, "Snow"},
		{80, "Showers"},
		{95, "Thunderstorm"},
		{4, "Unknown"},
		{53, "Unknown"},
		{100, "Unknown"},
		{-1, "Unknown"},
	}

	for _, tc := range testCases {
		if got := interpretWeatherCode(tc.code); got != tc.want {
			t.Errorf("interpretWeatherCode(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestParseForecastOMeteo(t *testing.T) {
	snapshot, err := ParseForecastOMeteo(strings.NewReader(sampleOMeteoResponse), discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Temperature != 27.3 {
		t.Errorf("temperature = %v, want 27.3", snapshot.Temperature)
	}
	if snapshot.WindSpeed != 11.2 {
		t.Errorf("windSpeed = %v, want 11.2", snapshot.WindSpeed)
	}
	if snapshot.Condition != "Partly Cloudy" {
		t.Errorf("condition = %q, want %q", snapshot.Condition, "Partly Cloudy")
	}
	if snapshot.Rainfall != 1.2 {
		t.Errorf("rainfall = %v, want day-0 precipitation 1.2", snapshot.Rainfall)
	}
	if snapshot.Humidity != 0 || snapshot.UVIndex != 0 {
		t.Errorf("humidity/uvIndex = %v/%v, want 0/0 without enrichment", snapshot.Humidity, snapshot.UVIndex)
	}

	if len(snapshot.Forecast) != 5 {
		t.Fatalf("forecast has %d entries, want 5", len(snapshot.Forecast))
	}

	wantDays := []ForecastDay{
		{Date: "2025-01-18", Temperature: ForecastTemps{Max: 30.1, Min: 19.5}, Condition: "Partly Cloudy", Rainfall: 1.2},
		{Date: "2025-01-19", Temperature: ForecastTemps{Max: 29.4, Min: 18.9}, Condition: "Clear", Rainfall: 0.0},
		{Date: "2025-01-20", Temperature: ForecastTemps{Max: 28.0, Min: 18.2}, Condition: "Rain", Rainfall: 4.5},
		{Date: "2025-01-21", Temperature: ForecastTemps{Max: 27.5, Min: 17.8}, Condition: "Light Drizzle", Rainfall: 0.3},
		{Date: "2025-01-22", Temperature: ForecastTemps{Max: 31.2, Min: 20.0}, Condition: "Mainly Clear", Rainfall: 0.0},
	}
	for i, want := range wantDays {
		if snapshot.Forecast[i] != want {
			t.Errorf("forecast[%d] = %+v, want %+v", i, snapshot.Forecast[i], want)
		}
	}
}

func TestParseForecastOMeteoEmptyDaily(t *testing.T) {
	body := `{"current_weather": {"temperature": 20, "windspeed": 5, "weathercode": 0}, "daily": {}}`

	snapshot, err := ParseForecastOMeteo(strings.NewReader(body), discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Rainfall != 0 {
		t.Errorf("rainfall = %v, want 0 when the daily series is absent", snapshot.Rainfall)
	}
	if len(snapshot.Forecast) != 0 {
		t.Errorf("forecast has %d entries, want 0", len(snapshot.Forecast))
	}
}

func TestParseForecastOMeteoMisalignedArrays(t *testing.T) {
	body := `{
		"current_weather": {"temperature": 20, "windspeed": 5, "weathercode": 0},
		"daily": {
			"time": ["2025-01-18", "2025-01-19", "2025-01-20"],
			"temperature_2m_max": [30.0],
			"temperature_2m_min": [],
			"precipitation_sum": [2.5, 1.0],
			"weathercode": [95]
		}
	}`

	snapshot, err := ParseForecastOMeteo(strings.NewReader(body), discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Forecast) != 3 {
		t.Fatalf("forecast has %d entries, want the length of the time array (3)", len(snapshot.Forecast))
	}
	if snapshot.Forecast[0].Temperature.Max != 30.0 || snapshot.Forecast[0].Condition != "Thunderstorm" {
		t.Errorf("forecast[0] = %+v, want values from the aligned prefix", snapshot.Forecast[0])
	}
	if snapshot.Forecast[2].Temperature.Max != 0 || snapshot.Forecast[2].Condition != "Unknown" || snapshot.Forecast[2].Rainfall != 0 {
		t.Errorf("forecast[2] = %+v, want zero-padded tail", snapshot.Forecast[2])
	}
}

func TestParseForecastOMeteoMalformedBody(t *testing.T) {
	if _, err := ParseForecastOMeteo(strings.NewReader("not json"), discardLogger()); err == nil {
		t.Error("expected error for malformed body, got nil")
	}
}

func TestParseRealtimeTomorrow(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		wantHumidity  *float64
		wantUVIndex   *float64
		wantIntensity *float64
		wantErr       bool
	}{
		{
			name:          "All Fields Present",
			body:          `{"data": {"values": {"humidity": 62, "uvIndex": 5, "precipitationIntensity": 0.4}}}`,
			wantHumidity:  floatPtr(62),
			wantUVIndex:   floatPtr(5),
			wantIntensity: floatPtr(0.4),
		},
		{
			name:         "Partial Fields",
			body:         `{"data": {"values": {"humidity": 48}}}`,
			wantHumidity: floatPtr(48),
		},
		{
			name: "Empty Values",
			body: `{"data": {"values": {}}}`,
		},
		{
			name:    "Malformed Body",
			body:    `<!doctype html>`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := ParseRealtimeTomorrow(strings.NewReader(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			checkFloatPtr(t, "humidity", values.Humidity, tc.wantHumidity)
			checkFloatPtr(t, "uvIndex", values.UVIndex, tc.wantUVIndex)
			checkFloatPtr(t, "precipitationIntensity", values.PrecipitationIntensity, tc.wantIntensity)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func checkFloatPtr(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s = %v, want absent", field, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s absent, want %v", field, *want)
		return
	}
	if *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}
