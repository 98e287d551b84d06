package main

// This file defines the domain types served by the FarmSight API. The weather
// types mirror the normalized snapshot shape the dashboard renders; the rest
// are the dashboard's content objects (logbook records, market prices, alerts,
// community posts, disease detections and yield predictions). JSON tags are
// part of the client contract and must not change.

// Location is a resolved geographic coordinate, optionally carrying the
// place name it was resolved from.
type Location struct {
	CityName    string  `json:"city_name,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code,omitempty"`
}

// WeatherSnapshot is one complete normalized weather result for a single
// fetch. Temperature, wind, rainfall, condition and the forecast come from
// the primary provider; humidity and UV index stay 0 unless the secondary
// provider supplies them.
type WeatherSnapshot struct {
	Temperature float64       `json:"temperature"`
	Humidity    float64       `json:"humidity"`
	Rainfall    float64       `json:"rainfall"`
	WindSpeed   float64       `json:"windSpeed"`
	UVIndex     float64       `json:"uvIndex"`
	Condition   string        `json:"condition"`
	Forecast    []ForecastDay `json:"forecast"`
}

// ForecastDay is one entry of the 5-day daily forecast.
type ForecastDay struct {
	Date        string        `json:"date"`
	Temperature ForecastTemps `json:"temperature"`
	Condition   string        `json:"condition"`
	Rainfall    float64       `json:"rainfall"`
}

type ForecastTemps struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

// Crop record statuses. The derivation at save time only ever produces
// StatusGrowing or StatusHarvested; StatusPlanted remains a valid stored
// value for records that carry it.
const (
	StatusPlanted   = "planted"
	StatusGrowing   = "growing"
	StatusHarvested = "harvested"
)

// CropRecord is one entry of the farm logbook. IDs are decimal
// millisecond-timestamp strings, kept for compatibility with records the
// dashboard created before this backend existed.
type CropRecord struct {
	ID              string  `json:"id"`
	CropName        string  `json:"cropName"`
	Variety         string  `json:"variety"`
	PlantingDate    string  `json:"plantingDate"`
	ExpectedHarvest string  `json:"expectedHarvest"`
	Area            float64 `json:"area"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

// CropRecordForm carries the user-entered fields of a logbook submission.
// ID and Status are derived server-side.
type CropRecordForm struct {
	CropName        string  `json:"cropName"`
	Variety         string  `json:"variety"`
	PlantingDate    string  `json:"plantingDate"`
	ExpectedHarvest string  `json:"expectedHarvest"`
	Area            float64 `json:"area"`
	Location        string  `json:"location"`
	Notes           string  `json:"notes"`
}

// CropRecordView is a CropRecord plus the derived days-to-harvest label the
// dashboard shows ("12 days", or "Overdue" once the harvest date passed).
type CropRecordView struct {
	CropRecord
	DaysToHarvest string `json:"daysToHarvest"`
}

type CropPrice struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousPrice float64 `json:"previousPrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Unit          string  `json:"unit"`
	Market        string  `json:"market"`
}

type Alert struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

type CommunityPost struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Replies   int    `json:"replies"`
}

// CommunityPostForm carries the user-entered fields of a new post.
type CommunityPostForm struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type DiseaseDetection struct {
	ID                 string   `json:"id"`
	ImageName          string   `json:"imageName"`
	DetectedDisease    string   `json:"detectedDisease"`
	Confidence         int      `json:"confidence"`
	Severity           string   `json:"severity"`
	Treatment          string   `json:"treatment"`
	PreventiveMeasures []string `json:"preventiveMeasures"`
	Date               string   `json:"date"`
}

type YieldPrediction struct {
	CropName        string       `json:"cropName"`
	ExpectedYield   float64      `json:"expectedYield"`
	Confidence      int          `json:"confidence"`
	Factors         YieldFactors `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

type YieldFactors struct {
	Weather     int `json:"weather"`
	Soil        int `json:"soil"`
	Irrigation  int `json:"irrigation"`
	PestControl int `json:"pestControl"`
}

// ChatRequest is the body of /api/ai and /chat requests.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body of /api/ai and /chat replies.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ConfigResponse tells the client which optional features are live.
type ConfigResponse struct {
	DevMode           bool `json:"dev_mode"`
	WeatherEnrichment bool `json:"weather_enrichment"`
	ChatEnabled       bool `json:"chat_enabled"`
}
