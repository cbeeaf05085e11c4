package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

func TestBookingsCSVRoundTripLayout(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2026-02-20")
	bookings := []model.BookingRecord{
		{Date: d, Hours: 7.5, Project: "P1", Activity: "Dev"},
	}

	path := filepath.Join(t.TempDir(), "bookings.csv")
	if err := BookingsToCSV(bookings, path); err != nil {
		t.Fatalf("BookingsToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "date" || rows[0][3] != "hours" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "2026-02-20" || rows[1][3] != "7.5" {
		t.Fatalf("data row = %v", rows[1])
	}
}

func TestForecastToJSON(t *testing.T) {
	fc := model.BudgetForecast{
		Scope:       model.Scope{Project: "P1"},
		Status:      model.StatusOK,
		TargetHours: 100,
	}

	path := filepath.Join(t.TempDir(), "forecast.json")
	if err := ForecastToJSON(fc, path); err != nil {
		t.Fatalf("ForecastToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var decoded forecastExport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Forecast.Status != model.StatusOK || decoded.Forecast.TargetHours != 100 {
		t.Fatalf("decoded forecast = %+v", decoded.Forecast)
	}
	if decoded.ExportedAt == "" {
		t.Fatal("missing export timestamp")
	}
}
