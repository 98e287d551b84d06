package main

import (
	"encoding/json"
	"net/http"
	"time"
)

// handlerLogbook serves the farm logbook's CRUD surface on a single path,
// dispatching on the request method. Status is recomputed at save time and
// the days-to-harvest label is derived on every read; the stored collection
// only ever holds the raw records.

// @Summary      Farm logbook CRUD
// @Description  GET lists records with the derived days-to-harvest label. POST creates
// @Description  a record from the submitted form (status derived, record prepended).
// @Description  PUT replaces the record with the given id in place. DELETE removes it.
// @Tags         logbook
// @Accept       json
// @Produce      json
// @Param        id query string false "Record id (PUT and DELETE)"
// @Success      200  {array}   CropRecordView
// @Failure      400  {object}  map[string]string "Invalid form"
// @Failure      404  {object}  map[string]string "record not found"
// @Router       /api/logbook [get]
func (cfg *apiConfig) handlerLogbook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg.handleListRecords(w, r)
	case http.MethodPost:
		cfg.handleCreateRecord(w, r)
	case http.MethodPut:
		cfg.handleUpdateRecord(w, r)
	case http.MethodDelete:
		cfg.handleDeleteRecord(w, r)
	default:
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
	}
}

func (cfg *apiConfig) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records := cfg.loadRecords(r.Context())

	now := time.Now()
	views := make([]CropRecordView, len(records))
	for i, record := range records {
		views[i] = CropRecordView{
			CropRecord:    record,
			DaysToHarvest: daysToHarvestLabel(record.ExpectedHarvest, now),
		}
	}

	cfg.respondWithJSON(w, http.StatusOK, views)
}

func (cfg *apiConfig) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var form CropRecordForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid record body", err)
		return
	}
	if err := validateRecordForm(form); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	record, err := cfg.createRecord(r.Context(), form)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to save record", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusCreated, record)
}

func (cfg *apiConfig) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "id query parameter is required", nil)
		return
	}

	var form CropRecordForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid record body", err)
		return
	}
	if err := validateRecordForm(form); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	record, found, err := cfg.updateRecord(r.Context(), id, form)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to save record", err)
		return
	}
	if !found {
		cfg.respondWithError(w, http.StatusNotFound, "record not found", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, record)
}

func (cfg *apiConfig) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "id query parameter is required", nil)
		return
	}

	found, err := cfg.deleteRecord(r.Context(), id)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to delete record", err)
		return
	}
	if !found {
		cfg.respondWithError(w, http.StatusNotFound, "record not found", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, map[string]string{"status": "record deleted"})
}
