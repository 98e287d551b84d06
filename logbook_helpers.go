package main

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// This file contains the logbook's derivation rules and the collection-level
// operations the handlers call. All mutations go through load-modify-save on
// the whole collection.

// dateLayout is the wire format of planting and harvest dates.
const dateLayout = "2006-01-02"

// deriveStatus recomputes a record's status at save time: harvested once the
// expected harvest date has passed, growing otherwise. This never yields
// "planted", even for a crop whose planting date is still in the future.
// An unparseable date counts as not yet harvested.
func deriveStatus(expectedHarvest string, now time.Time) string {
	harvest, err := time.Parse(dateLayout, expectedHarvest)
	if err != nil {
		return StatusGrowing
	}
	if now.After(harvest) {
		return StatusHarvested
	}
	return StatusGrowing
}

// daysToHarvest returns the whole days between today and the expected
// harvest date. Negative means the harvest date has passed.
func daysToHarvest(expectedHarvest string, now time.Time) (int, error) {
	harvest, err := time.Parse(dateLayout, expectedHarvest)
	if err != nil {
		return 0, err
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return int(harvest.Sub(today).Hours() / 24), nil
}

// daysToHarvestLabel renders the derived field the way the dashboard shows
// it: overdue harvests get a label instead of a negative count.
func daysToHarvestLabel(expectedHarvest string, now time.Time) string {
	days, err := daysToHarvest(expectedHarvest, now)
	if err != nil {
		return ""
	}
	if days < 0 {
		return "Overdue"
	}
	return fmt.Sprintf("%d days", days)
}

// newRecordID generates a record identifier from the creation timestamp, in
// the same decimal-milliseconds form the dashboard used.
func newRecordID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// validateRecordForm checks the required fields of a logbook submission.
func validateRecordForm(form CropRecordForm) error {
	if form.CropName == "" {
		return fmt.Errorf("cropName is required")
	}
	if _, err := time.Parse(dateLayout, form.PlantingDate); err != nil {
		return fmt.Errorf("plantingDate must be a YYYY-MM-DD date")
	}
	if _, err := time.Parse(dateLayout, form.ExpectedHarvest); err != nil {
		return fmt.Errorf("expectedHarvest must be a YYYY-MM-DD date")
	}
	if form.Area <= 0 {
		return fmt.Errorf("area must be a positive number of hectares")
	}
	return nil
}

// loadRecords reads the collection, failing closed: any storage or parse
// error yields an empty logbook rather than an error to the caller.
func (cfg *apiConfig) loadRecords(ctx context.Context) []CropRecord {
	records, err := cfg.logbook.Load(ctx)
	if err != nil {
		cfg.logger.Warn("could not load logbook, treating as empty", "error", err)
		return []CropRecord{}
	}
	return records
}

// createRecord builds a record from the form, prepends it and persists the
// collection.
func (cfg *apiConfig) createRecord(ctx context.Context, form CropRecordForm) (CropRecord, error) {
	now := time.Now()
	record := recordFromForm(form, newRecordID(now), now)

	records := cfg.loadRecords(ctx)
	records = append([]CropRecord{record}, records...)
	if err := cfg.logbook.Save(ctx, records); err != nil {
		return CropRecord{}, fmt.Errorf("could not persist logbook: %w", err)
	}
	return record, nil
}

// updateRecord replaces the record with the given id in place, preserving
// collection order. The bool result reports whether the id was found.
func (cfg *apiConfig) updateRecord(ctx context.Context, id string, form CropRecordForm) (CropRecord, bool, error) {
	record := recordFromForm(form, id, time.Now())

	records := cfg.loadRecords(ctx)
	found := false
	for i := range records {
		if records[i].ID == id {
			records[i] = record
			found = true
			break
		}
	}
	if !found {
		return CropRecord{}, false, nil
	}
	if err := cfg.logbook.Save(ctx, records); err != nil {
		return CropRecord{}, true, fmt.Errorf("could not persist logbook: %w", err)
	}
	return record, true, nil
}

// deleteRecord removes the record with the given id, leaving the rest in
// their original relative order.
func (cfg *apiConfig) deleteRecord(ctx context.Context, id string) (bool, error) {
	records := cfg.loadRecords(ctx)
	remaining := records[:0:0]
	found := false
	for _, record := range records {
		if record.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, record)
	}
	if !found {
		return false, nil
	}
	if remaining == nil {
		remaining = []CropRecord{}
	}
	if err := cfg.logbook.Save(ctx, remaining); err != nil {
		return true, fmt.Errorf("could not persist logbook: %w", err)
	}
	return true, nil
}

func recordFromForm(form CropRecordForm, id string, now time.Time) CropRecord {
	return CropRecord{
		ID:              id,
		CropName:        form.CropName,
		Variety:         form.Variety,
		PlantingDate:    form.PlantingDate,
		ExpectedHarvest: form.ExpectedHarvest,
		Area:            form.Area,
		Location:        form.Location,
		Status:          deriveStatus(form.ExpectedHarvest, now),
		Notes:           form.Notes,
	}
}
