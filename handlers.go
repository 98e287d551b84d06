package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// This file contains the HTTP handlers for the weather, assistant and chat
// endpoints. Each handler follows the same pattern:
// 1. It ensures the request method is correct.
// 2. It extracts and validates input from the request.
// 3. It calls the appropriate helper or service.
// 4. It sends the JSON response to the client.

// @Summary      Get normalized weather
// @Description  Retrieves a normalized weather snapshot for a coordinate, merging the
// @Description  primary forecast provider with optional secondary enrichment (humidity,
// @Description  UV index, rainfall override). The location can be given as lat/lon or,
// @Description  alternatively, as a city name.
// @Tags         weather
// @Produce      json
// @Param        lat  query     number  false  "Latitude (e.g., 12.9)"
// @Param        lon  query     number  false  "Longitude (e.g., 77.6)"
// @Param        city query     string  false  "City name, used when lat/lon are absent"
// @Success      200  {object}  WeatherSnapshot
// @Failure      400  {object}  map[string]string "lat/lon required"
// @Failure      500  {object}  map[string]string "Weather fetch failed"
// @Router       /api/weather [get]
func (cfg *apiConfig) handlerWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	location, err := cfg.getLocationFromRequest(r)
	if errors.Is(err, ErrLocationUnavailable) {
		cfg.respondWithError(w, http.StatusBadRequest, "lat/lon required", nil)
		return
	}
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Error getting location data", err)
		return
	}
	cfg.logger.Debug("weather request", "lat", location.Latitude, "lon", location.Longitude)

	snapshot, err := cfg.requestWeatherSnapshot(location)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Weather fetch failed", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, snapshot)
}

// handlerAssistant is the placeholder assistant endpoint the dashboard uses
// to verify backend connectivity; it echoes the message back.
func (cfg *apiConfig) handlerAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "AI Assistant error", err)
		return
	}

	reply := fmt.Sprintf("🤖 AI Assistant received: \"%s\" (backend connected!)", req.Message)
	cfg.respondWithJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// @Summary      Chat with the assistant
// @Description  Forwards a free-text message to the hosted inference API using the
// @Description  server-held credential and returns the generated reply. If the upstream
// @Description  response does not contain generated text, a fixed apology string is
// @Description  returned instead.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        message  body      ChatRequest  true  "Message to send"
// @Success      200  {object}  ChatResponse
// @Failure      500  {object}  map[string]string "Chatbot service unavailable"
// @Router       /chat [post]
func (cfg *apiConfig) handlerChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	if cfg.chat == nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Chatbot service unavailable", errors.New("no inference API key configured"))
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Chatbot service unavailable", err)
		return
	}

	reply, err := cfg.chat.Reply(req.Message)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Chatbot service unavailable", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// handlerConfig provides client-side applications with necessary configuration,
// such as which optional integrations are enabled.
func (cfg *apiConfig) handlerConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	response := ConfigResponse{
		DevMode:           cfg.devMode,
		WeatherEnrichment: cfg.tomorrowKey != "",
		ChatEnabled:       cfg.chat != nil,
	}

	cfg.respondWithJSON(w, http.StatusOK, response)
}
