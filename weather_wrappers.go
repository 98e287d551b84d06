package main

import (
	"fmt"
)

// URL builders for the two weather providers. The query strings are the
// exact parameter sets the dashboard has always requested; changing them
// changes which fields the parsers can rely on.

func (cfg *apiConfig) wrapForOpenMeteoForecast(location Location) string {
	ometeoParameters := "current_weather=true&daily=temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode&forecast_days=5&timezone=auto"
	return fmt.Sprintf("%slatitude=%f&longitude=%f&%s", cfg.ometeoForecastURL, location.Latitude, location.Longitude, ometeoParameters)
}

func (cfg *apiConfig) wrapForTomorrowRealtime(location Location) string {
	return fmt.Sprintf("%slocation=%f,%f&apikey=%s", cfg.tomorrowURL, location.Latitude, location.Longitude, cfg.tomorrowKey)
}
