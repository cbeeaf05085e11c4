package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

type forecastExport struct {
	ExportedAt string               `json:"exported_at"`
	Forecast   model.BudgetForecast `json:"forecast"`
}

// ForecastToJSON writes one forecast result with an export timestamp.
func ForecastToJSON(fc model.BudgetForecast, path string) error {
	payload := forecastExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Forecast:   fc,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal forecast: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

type bookingsExport struct {
	ExportedAt string                `json:"exported_at"`
	Count      int                   `json:"count"`
	Bookings   []model.BookingRecord `json:"bookings"`
}

// BookingsToJSON writes booking rows with an export timestamp.
func BookingsToJSON(bookings []model.BookingRecord, path string) error {
	payload := bookingsExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(bookings),
		Bookings:   bookings,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
