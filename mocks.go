package main

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// This file holds the canned content behind the market-price, alert, disease
// and yield endpoints. None of it is real inference: disease detection
// returns the same diagnosis for every image and yield prediction is one
// fixed profile with the crop name substituted. The dashboard is written
// against these literal values, so they must not drift.

// simulateLatency blocks for the configured mock-service delay, honoring
// request cancellation.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func mockCropPrices() []CropPrice {
	return []CropPrice{
		{ID: "1", Name: "Wheat", CurrentPrice: 2150, PreviousPrice: 2100, Change: 50, ChangePercent: 2.38, Unit: "₹/quintal", Market: "Mandi"},
		{ID: "2", Name: "Rice", CurrentPrice: 1850, PreviousPrice: 1920, Change: -70, ChangePercent: -3.65, Unit: "₹/quintal", Market: "Mandi"},
		{ID: "3", Name: "Corn", CurrentPrice: 1650, PreviousPrice: 1600, Change: 50, ChangePercent: 3.13, Unit: "₹/quintal", Market: "Market Yard"},
		{ID: "4", Name: "Tomato", CurrentPrice: 3500, PreviousPrice: 3200, Change: 300, ChangePercent: 9.38, Unit: "₹/quintal", Market: "Wholesale"},
		{ID: "5", Name: "Onion", CurrentPrice: 2800, PreviousPrice: 3100, Change: -300, ChangePercent: -9.68, Unit: "₹/quintal", Market: "Mandi"},
		{ID: "6", Name: "Potato", CurrentPrice: 1200, PreviousPrice: 1150, Change: 50, ChangePercent: 4.35, Unit: "₹/quintal", Market: "Local Market"},
	}
}

func mockAlerts() []Alert {
	return []Alert{
		{ID: "1", Type: "weather", Severity: "warning", Title: "Heavy Rain Alert", Message: "Heavy rainfall expected in the next 24 hours. Consider protective measures for crops.", Timestamp: "2025-01-18T14:30:00Z", Read: false},
		{ID: "2", Type: "pest", Severity: "critical", Title: "Aphid Infestation Risk", Message: "High aphid activity reported in nearby farms. Monitor your crops closely.", Timestamp: "2025-01-18T10:15:00Z", Read: false},
		{ID: "3", Type: "irrigation", Severity: "info", Title: "Optimal Irrigation Time", Message: "Based on current weather conditions, evening irrigation is recommended.", Timestamp: "2025-01-18T08:00:00Z", Read: true},
		{ID: "4", Type: "disease", Severity: "warning", Title: "Fungal Disease Alert", Message: "High humidity levels may promote fungal diseases. Apply preventive fungicides.", Timestamp: "2025-01-17T16:45:00Z", Read: true},
	}
}

func mockCommunityPosts() []CommunityPost {
	return []CommunityPost{
		{ID: "1", Author: "Ravi Kumar", Title: "Best practices for organic wheat farming", Content: "I've been practicing organic wheat farming for 5 years...", Category: "tip", Timestamp: "2025-01-18T12:00:00Z", Likes: 24, Replies: 8},
		{ID: "2", Author: "Priya Sharma", Title: "How to deal with pest attacks in tomatoes?", Content: "My tomato plants are showing signs of pest damage...", Category: "question", Timestamp: "2025-01-18T09:30:00Z", Likes: 12, Replies: 15},
		{ID: "3", Author: "Amit Singh", Title: "Record harvest this season!", Content: "Thanks to proper soil management and timely irrigation...", Category: "success", Timestamp: "2025-01-17T18:20:00Z", Likes: 45, Replies: 12},
	}
}

// detectDisease returns the canned diagnosis, stamped with a fresh id and
// the uploaded image's file name.
func detectDisease(imageName string, now time.Time) DiseaseDetection {
	return DiseaseDetection{
		ID:              uuid.New().String(),
		ImageName:       imageName,
		DetectedDisease: "Leaf Spot Disease",
		Confidence:      89,
		Severity:        "medium",
		Treatment:       "Apply copper-based fungicide every 7-10 days",
		PreventiveMeasures: []string{
			"Ensure proper air circulation",
			"Avoid overhead watering",
			"Remove affected leaves immediately",
			"Apply preventive fungicide sprays",
		},
		Date: now.UTC().Format(time.RFC3339),
	}
}

// predictYield returns the fixed factor/confidence profile with the
// requested crop name substituted.
func predictYield(cropName string) YieldPrediction {
	return YieldPrediction{
		CropName:      cropName,
		ExpectedYield: 45.2,
		Confidence:    87,
		Factors: YieldFactors{
			Weather:     85,
			Soil:        78,
			Irrigation:  92,
			PestControl: 88,
		},
		Recommendations: []string{
			"Continue current irrigation schedule",
			"Monitor for rust diseases in the coming weeks",
			"Consider nitrogen top-dressing at flowering stage",
			"Plan harvest timing based on weather forecast",
		},
	}
}
