package main

import (
	"fmt"
	"net/http"
)

// This file contains the weather normalizer: one call that merges the two
// providers into a single WeatherSnapshot.
//
// The primary provider (Open-Meteo) is mandatory; any failure there fails
// the whole operation. The secondary provider (Tomorrow.io) only enriches
// the snapshot with humidity, UV index and a rainfall override, and is
// attempted strictly after the primary call resolved. Its failure is policy:
// logged and discarded, never propagated; the dashboard prefers a partial
// snapshot over no snapshot.

// requestWeatherSnapshot fetches and merges both providers for a location.
func (cfg *apiConfig) requestWeatherSnapshot(location Location) (WeatherSnapshot, error) {
	snapshot, err := cfg.fetchOpenMeteoForecast(location)
	if err != nil {
		return WeatherSnapshot{}, fmt.Errorf("primary weather provider failed: %w", err)
	}

	if cfg.tomorrowKey == "" {
		return snapshot, nil
	}

	values, err := cfg.fetchTomorrowRealtime(location)
	if err != nil {
		// Best-effort enrichment: keep the base snapshot unchanged.
		cfg.logger.Warn("secondary weather provider skipped", "error", err)
		return snapshot, nil
	}

	if values.Humidity != nil {
		snapshot.Humidity = *values.Humidity
	}
	if values.UVIndex != nil {
		snapshot.UVIndex = *values.UVIndex
	}
	if values.PrecipitationIntensity != nil {
		snapshot.Rainfall = *values.PrecipitationIntensity
	}

	return snapshot, nil
}

func (cfg *apiConfig) fetchOpenMeteoForecast(location Location) (WeatherSnapshot, error) {
	resp, err := cfg.httpClient.Get(cfg.wrapForOpenMeteoForecast(location))
	if err != nil {
		return WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherSnapshot{}, fmt.Errorf("failed to fetch forecast: %s", resp.Status)
	}

	return ParseForecastOMeteo(resp.Body, cfg.logger)
}

func (cfg *apiConfig) fetchTomorrowRealtime(location Location) (TomorrowValues, error) {
	resp, err := cfg.httpClient.Get(cfg.wrapForTomorrowRealtime(location))
	if err != nil {
		return TomorrowValues{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TomorrowValues{}, fmt.Errorf("failed to fetch realtime conditions: %s", resp.Status)
	}

	return ParseRealtimeTomorrow(resp.Body)
}
