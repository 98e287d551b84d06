package main

import (
	"encoding/json"
	"net/http"
	"time"
)

// Handlers for the dashboard's content services: market prices, alerts,
// disease detection, yield prediction and the community board. The first
// four serve canned data (see mocks.go) behind a simulated latency the
// dashboard was written against.

// @Summary      Get market prices
// @Description  Retrieves the current market prices for common crops, optionally
// @Description  filtered by crop name. Matching is case- and diacritic-insensitive.
// @Tags         content
// @Produce      json
// @Param        crop query     string  false  "Crop name to filter by (e.g., 'Tomato')"
// @Success      200  {array}   CropPrice
// @Router       /api/prices [get]
func (cfg *apiConfig) handlerPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	if err := simulateLatency(r.Context(), cfg.priceDelay); err != nil {
		return
	}

	prices := mockCropPrices()

	if crop := r.URL.Query().Get("crop"); crop != "" {
		wanted, err := normalizeCropName(crop)
		if err != nil {
			cfg.respondWithError(w, http.StatusBadRequest, "Invalid crop name", err)
			return
		}
		filtered := []CropPrice{}
		for _, price := range prices {
			name, err := normalizeCropName(price.Name)
			if err != nil {
				continue
			}
			if name == wanted {
				filtered = append(filtered, price)
			}
		}
		prices = filtered
	}

	cfg.respondWithJSON(w, http.StatusOK, prices)
}

func (cfg *apiConfig) handlerAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, mockAlerts())
}

// @Summary      Detect crop disease
// @Description  Accepts an uploaded crop image and returns a diagnosis. The current
// @Description  implementation is a fixture: the diagnosis is identical for every
// @Description  image, only the image name and timestamp vary.
// @Tags         content
// @Accept       mpfd
// @Produce      json
// @Param        image formData file true "Crop image"
// @Success      200  {object}  DiseaseDetection
// @Failure      400  {object}  map[string]string "image file required"
// @Router       /api/disease [post]
func (cfg *apiConfig) handlerDisease(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "image file required", err)
		return
	}
	file.Close()

	if err := simulateLatency(r.Context(), cfg.diseaseDelay); err != nil {
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, detectDisease(header.Filename, time.Now()))
}

func (cfg *apiConfig) handlerYield(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	crop := r.URL.Query().Get("crop")
	if crop == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "crop query parameter is required", nil)
		return
	}

	if err := simulateLatency(r.Context(), cfg.yieldDelay); err != nil {
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, predictYield(crop))
}

// handlerCommunity serves the community board: GET lists posts newest-first,
// POST creates one.
func (cfg *apiConfig) handlerCommunity(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg.respondWithJSON(w, http.StatusOK, cfg.community.List())
	case http.MethodPost:
		var form CommunityPostForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			cfg.respondWithError(w, http.StatusBadRequest, "Invalid post body", err)
			return
		}
		post, err := cfg.community.Add(form, time.Now())
		if err != nil {
			cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		cfg.respondWithJSON(w, http.StatusCreated, post)
	default:
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
	}
}

func (cfg *apiConfig) handlerCommunityLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "id query parameter is required", nil)
		return
	}

	post, found := cfg.community.Like(id)
	if !found {
		cfg.respondWithError(w, http.StatusNotFound, "post not found", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, post)
}
