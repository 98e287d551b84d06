package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// This file provides the application's geocoding capability, used when a
// client identifies a location by name instead of coordinates. It abstracts
// the provider behind a GeocodingService interface so tests and future
// replacements do not depend on the concrete Open-Meteo client.

// ErrNoResultsFound is returned when a geocoding query yields no results.
var ErrNoResultsFound = errors.New("no results found for the given query")

// GeocodingService resolves a place name to coordinates.
type GeocodingService interface {
	Geocode(cityName string) (Location, error)
}

// OpenMeteoGeocodingService implements GeocodingService against the
// Open-Meteo geocoding API, which needs no credential.
type OpenMeteoGeocodingService struct {
	geocodeURL string
	httpClient *http.Client
}

func NewOpenMeteoGeocodingService(geocodeURL string, httpClient *http.Client) *OpenMeteoGeocodingService {
	return &OpenMeteoGeocodingService{
		geocodeURL: geocodeURL,
		httpClient: httpClient,
	}
}

func (s *OpenMeteoGeocodingService) Geocode(cityName string) (Location, error) {
	baseURL, err := url.Parse(s.geocodeURL)
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse base geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("name", cityName)
	q.Set("count", "1")
	baseURL.RawQuery = q.Encode()

	resp, err := s.httpClient.Get(baseURL.String())
	if err != nil {
		return Location{}, fmt.Errorf("geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocoding API request returned non-200 status: %s", resp.Status)
	}

	var responseJSON GeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&responseJSON); err != nil {
		return Location{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(responseJSON.Results) == 0 {
		return Location{}, ErrNoResultsFound
	}

	result := responseJSON.Results[0]
	return Location{
		CityName:    result.Name,
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		CountryCode: result.CountryCode,
	}, nil
}

// The following structs represent the Open-Meteo geocoding API response.
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}
