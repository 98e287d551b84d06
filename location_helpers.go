package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrLocationUnavailable is returned when a request carries neither a usable
// coordinate pair nor a resolvable city name. The weather handler reports it
// with the literal "lat/lon required" body the dashboard matches on.
var ErrLocationUnavailable = errors.New("lat/lon required")

// getLocationFromRequest extracts a location from the query string. The
// dashboard normally sends lat/lon straight from the browser's geolocation;
// city lookup is the fallback for clients without one.
func (cfg *apiConfig) getLocationFromRequest(r *http.Request) (Location, error) {
	cityName := r.URL.Query().Get("city")
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return Location{}, fmt.Errorf("invalid latitude: %v", err)
		}

		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return Location{}, fmt.Errorf("invalid longitude: %v", err)
		}

		return Location{Latitude: lat, Longitude: lon}, nil
	}

	if cityName != "" {
		location, err := cfg.geocoder.Geocode(cityName)
		if err != nil {
			return Location{}, fmt.Errorf("could not geocode city '%s': %w", cityName, err)
		}
		return location, nil
	}

	return Location{}, ErrLocationUnavailable
}
