package main

import (
	"encoding/json"
	"io"
	"log/slog"
)

// ParseForecastOMeteo decodes an Open-Meteo forecast response into the base
// WeatherSnapshot. Humidity and UV index stay 0 here; only the secondary
// provider ever fills them in.
//
// The daily series arrives as parallel arrays keyed by index. The forecast
// length is taken from the time array; a sibling array that is shorter
// contributes zero values for its missing tail rather than failing the
// whole fetch (the mismatch is logged, since it means the upstream contract
// changed).
func ParseForecastOMeteo(body io.Reader, logger *slog.Logger) (WeatherSnapshot, error) {
	var response ResponseForecastOMeteo

	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return WeatherSnapshot{}, err
	}

	daily := response.Daily
	forecast := make([]ForecastDay, len(daily.Time))
	for i, date := range daily.Time {
		day := ForecastDay{Date: date}
		if i < len(daily.Temperature2mMax) {
			day.Temperature.Max = daily.Temperature2mMax[i]
		}
		if i < len(daily.Temperature2mMin) {
			day.Temperature.Min = daily.Temperature2mMin[i]
		}
		if i < len(daily.WeatherCode) {
			day.Condition = interpretWeatherCode(daily.WeatherCode[i])
		} else {
			day.Condition = interpretWeatherCode(-1)
		}
		if i < len(daily.PrecipitationSum) {
			day.Rainfall = daily.PrecipitationSum[i]
		}
		forecast[i] = day
	}
	if len(daily.Temperature2mMax) != len(daily.Time) ||
		len(daily.Temperature2mMin) != len(daily.Time) ||
		len(daily.PrecipitationSum) != len(daily.Time) ||
		len(daily.WeatherCode) != len(daily.Time) {
		logger.Warn("daily forecast arrays are not index-aligned", "days", len(daily.Time))
	}

	snapshot := WeatherSnapshot{
		Temperature: response.CurrentWeather.Temperature,
		WindSpeed:   response.CurrentWeather.WindSpeed,
		Condition:   interpretWeatherCode(response.CurrentWeather.WeatherCode),
		Forecast:    forecast,
	}
	if len(daily.PrecipitationSum) > 0 {
		snapshot.Rainfall = daily.PrecipitationSum[0]
	}

	return snapshot, nil
}

// ParseRealtimeTomorrow decodes a Tomorrow.io realtime response. The fields
// are pointers so the caller can tell "absent" apart from a literal zero and
// overlay only what the provider actually sent.
func ParseRealtimeTomorrow(body io.Reader) (TomorrowValues, error) {
	var response ResponseRealtimeTomorrow

	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return TomorrowValues{}, err
	}

	return response.Data.Values, nil
}

// The following structs represent the provider JSON responses.

type ResponseForecastOMeteo struct {
	CurrentWeather CurrentWeatherOMeteo `json:"current_weather"`
	Daily          DailyOMeteo          `json:"daily"`
}

type CurrentWeatherOMeteo struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

type DailyOMeteo struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WeatherCode      []int     `json:"weathercode"`
}

type ResponseRealtimeTomorrow struct {
	Data TomorrowData `json:"data"`
}

type TomorrowData struct {
	Values TomorrowValues `json:"values"`
}

type TomorrowValues struct {
	Humidity               *float64 `json:"humidity"`
	UVIndex                *float64 `json:"uvIndex"`
	PrecipitationIntensity *float64 `json:"precipitationIntensity"`
}

// interpretWeatherCode maps Open-Meteo WMO weather codes to the condition
// strings the dashboard renders. Codes outside the table map to "Unknown".
func interpretWeatherCode(i int) string {
	switch i {
	case 0:
		return "Clear"
	case 1:
		return "Mainly Clear"
	case 2:
		return "Partly Cloudy"
	case 3:
		return "Cloudy"
	case 45:
		return "Foggy"
	case 48:
		return "Rime Fog"
	case 51:
		return "Light Drizzle"
	case 61:
		return "Light Rain"
	case 63:
		return "Rain"
	case 65:
		return "Heavy Rain"
	case 71:
		return "Snow"
	case 80:
		return "Showers"
	case 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
