package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// apiConfig carries every collaborator the handlers need. All of it is
// injected, so tests can swap any piece for a mock.
type apiConfig struct {
	logbook           LogbookStore
	community         *communityBoard
	chat              ChatService
	geocoder          GeocodingService
	ometeoForecastURL string
	tomorrowURL       string
	tomorrowKey       string
	httpClient        *http.Client
	priceDelay        time.Duration
	diseaseDelay      time.Duration
	yieldDelay        time.Duration
	port              string
	devMode           bool
	logger            *slog.Logger
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// Default simulated latencies of the mock content services. The dashboard
// was written against these delays, so they are part of the contract; tests
// override them with MOCK_DELAY_MS=0.
const (
	defaultPriceDelay   = 800 * time.Millisecond
	defaultYieldDelay   = 1500 * time.Millisecond
	defaultDiseaseDelay = 2000 * time.Millisecond
)

func config() *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// The logbook lives in Redis when a URL is configured; otherwise it is
	// held in memory and lost on restart, which matches a cleared browser.
	var logbook LogbookStore = NewMemoryLogbookStore()
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Error("could not parse Redis URL", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(opt)
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Error("could not connect to Redis", "error", err)
			os.Exit(1)
		}
		logbook = NewRedisLogbookStore(redisClient)
		logger.Info("logbook persistence enabled", "backend", "redis")
	} else {
		logger.Info("REDIS_URL not set, logbook records held in memory only")
	}

	tomorrowKey := os.Getenv("TOMORROW_KEY")
	if tomorrowKey == "" {
		logger.Info("TOMORROW_KEY not set, weather enrichment disabled")
	}

	var chat ChatService
	if hfKey := os.Getenv("HF_API_KEY"); hfKey != "" {
		chat = NewHuggingFaceChatService(
			getEnv("HF_API_URL", "https://api-inference.huggingface.co/models/", logger),
			getEnv("HF_MODEL", "microsoft/DialoGPT-small", logger),
			hfKey,
			httpClient,
		)
	} else {
		logger.Info("HF_API_KEY not set, chatbot disabled")
	}

	geocoder := NewOpenMeteoGeocodingService(
		getEnv("OMETEO_GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search?", logger),
		httpClient,
	)

	priceDelay, diseaseDelay, yieldDelay := defaultPriceDelay, defaultDiseaseDelay, defaultYieldDelay
	if ms := getEnvAsInt("MOCK_DELAY_MS", -1, logger); ms >= 0 {
		d := time.Duration(ms) * time.Millisecond
		priceDelay, diseaseDelay, yieldDelay = d, d, d
	}

	cfg := apiConfig{
		logbook:           logbook,
		community:         newCommunityBoard(mockCommunityPosts()),
		chat:              chat,
		geocoder:          geocoder,
		ometeoForecastURL: getEnv("OMETEO_FORECAST_URL", "https://api.open-meteo.com/v1/forecast?", logger),
		tomorrowURL:       getEnv("TOMORROW_REALTIME_URL", "https://api.tomorrow.io/v4/weather/realtime?", logger),
		tomorrowKey:       tomorrowKey,
		httpClient:        httpClient,
		priceDelay:        priceDelay,
		diseaseDelay:      diseaseDelay,
		yieldDelay:        yieldDelay,
		port:              getEnv("PORT", "5000", logger),
		devMode:           devMode,
		logger:            logger,
	}

	return &cfg
}
