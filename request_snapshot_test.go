package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestWeatherSnapshot(t *testing.T) {
	location := Location{Latitude: 12.9, Longitude: 77.6}

	testCases := []struct {
		name             string
		tomorrowKey      string
		primaryHandler   http.HandlerFunc
		secondaryHandler http.HandlerFunc
		wantErr          bool
		wantHumidity     float64
		wantUVIndex      float64
		wantRainfall     float64
		wantSecondaryHit bool
	}{
		{
			name: "Primary Only",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleOMeteoResponse))
			},
			wantHumidity: 0,
			wantUVIndex:  0,
			wantRainfall: 1.2,
		},
		{
			name:        "Secondary Enrichment",
			tomorrowKey: "test-key",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleOMeteoResponse))
			},
			secondaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data": {"values": {"humidity": 62, "uvIndex": 5}}}`))
			},
			wantHumidity:     62,
			wantUVIndex:      5,
			wantRainfall:     1.2,
			wantSecondaryHit: true,
		},
		{
			name:        "Secondary Rainfall Override",
			tomorrowKey: "test-key",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleOMeteoResponse))
			},
			secondaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data": {"values": {"precipitationIntensity": 7.5}}}`))
			},
			wantHumidity:     0,
			wantUVIndex:      0,
			wantRainfall:     7.5,
			wantSecondaryHit: true,
		},
		{
			name:        "Secondary Failure Is Non-Fatal",
			tomorrowKey: "test-key",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleOMeteoResponse))
			},
			secondaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantHumidity:     0,
			wantUVIndex:      0,
			wantRainfall:     1.2,
			wantSecondaryHit: true,
		},
		{
			name:        "Secondary Malformed Body Is Non-Fatal",
			tomorrowKey: "test-key",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(sampleOMeteoResponse))
			},
			secondaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<!doctype html>"))
			},
			wantHumidity:     0,
			wantUVIndex:      0,
			wantRainfall:     1.2,
			wantSecondaryHit: true,
		},
		{
			name: "Primary Failure Is Fatal",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "Primary Malformed Body Is Fatal",
			primaryHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			primary := httptest.NewServer(tc.primaryHandler)
			defer primary.Close()

			secondaryHit := false
			secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				secondaryHit = true
				if tc.secondaryHandler != nil {
					tc.secondaryHandler(w, r)
				}
			}))
			defer secondary.Close()

			cfg := newTestConfig()
			cfg.ometeoForecastURL = primary.URL + "/?"
			cfg.tomorrowURL = secondary.URL + "/?"
			cfg.tomorrowKey = tc.tomorrowKey

			snapshot, err := cfg.requestWeatherSnapshot(location)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if snapshot.Humidity != tc.wantHumidity {
				t.Errorf("humidity = %v, want %v", snapshot.Humidity, tc.wantHumidity)
			}
			if snapshot.UVIndex != tc.wantUVIndex {
				t.Errorf("uvIndex = %v, want %v", snapshot.UVIndex, tc.wantUVIndex)
			}
			if snapshot.Rainfall != tc.wantRainfall {
				t.Errorf("rainfall = %v, want %v", snapshot.Rainfall, tc.wantRainfall)
			}
			if secondaryHit != tc.wantSecondaryHit {
				t.Errorf("secondary provider hit = %v, want %v", secondaryHit, tc.wantSecondaryHit)
			}

			// The base snapshot fields never come from the secondary provider.
			if snapshot.Temperature != 27.3 {
				t.Errorf("temperature = %v, want 27.3 from the primary provider", snapshot.Temperature)
			}
			if snapshot.Condition != "Partly Cloudy" {
				t.Errorf("condition = %q, want %q from the primary provider", snapshot.Condition, "Partly Cloudy")
			}
			if len(snapshot.Forecast) != 5 {
				t.Errorf("forecast has %d entries, want 5", len(snapshot.Forecast))
			}
		})
	}
}
