package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// --- Mocks ---

// mockGeocodingService is a mock for the GeocodingService interface.
type mockGeocodingService struct {
	GeocodeFunc func(cityName string) (Location, error)
}

func (m *mockGeocodingService) Geocode(cityName string) (Location, error) {
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(cityName)
	}
	return Location{}, errors.New("GeocodeFunc not implemented in mock")
}

// mockChatService is a mock for the ChatService interface.
type mockChatService struct {
	ReplyFunc func(message string) (string, error)
}

func (m *mockChatService) Reply(message string) (string, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(message)
	}
	return "", errors.New("ReplyFunc not implemented in mock")
}

// mockLogbookStore is a mock for the LogbookStore interface. The zero value
// behaves like an empty, always-succeeding store.
type mockLogbookStore struct {
	LoadFunc func(ctx context.Context) ([]CropRecord, error)
	SaveFunc func(ctx context.Context, records []CropRecord) error
	saved    [][]CropRecord
}

func (m *mockLogbookStore) Load(ctx context.Context) ([]CropRecord, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	if len(m.saved) > 0 {
		return m.saved[len(m.saved)-1], nil
	}
	return []CropRecord{}, nil
}

func (m *mockLogbookStore) Save(ctx context.Context, records []CropRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, records)
	}
	m.saved = append(m.saved, records)
	return nil
}

// --- Test configuration ---

// newTestConfig returns an apiConfig wired with in-memory collaborators, a
// discarded logger and zero mock latency, suitable for handler tests.
func newTestConfig() *apiConfig {
	return &apiConfig{
		logbook:           NewMemoryLogbookStore(),
		community:         newCommunityBoard(mockCommunityPosts()),
		geocoder:          &mockGeocodingService{},
		ometeoForecastURL: "http://localhost/forecast?",
		tomorrowURL:       "http://localhost/realtime?",
		httpClient:        &http.Client{Timeout: 5 * time.Second},
		port:              "5000",
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
