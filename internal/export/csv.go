// Package export writes bookings and forecasts to CSV and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mfelsing/hourburn/internal/model"
)

// BookingsToCSV writes booking rows in the same column layout the importer
// accepts, so an export can be re-imported as-is.
func BookingsToCSV(bookings []model.BookingRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "project", "activity", "hours"}); err != nil {
		return err
	}

	for _, b := range bookings {
		row := []string{
			b.Date.Format("2006-01-02"),
			b.Project,
			b.Activity,
			strconv.FormatFloat(b.Hours, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// BudgetHistoryToCSV writes the budget audit trail for a scope.
func BudgetHistoryToCSV(entries []model.BudgetEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"valid_from", "project", "activity", "hours", "change_type", "reason", "reference", "created_by", "created_at"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.ValidFrom.Format("2006-01-02"),
			e.Project,
			e.Activity,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			string(e.ChangeType),
			e.Reason,
			e.Reference,
			e.CreatedBy,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
