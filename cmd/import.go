package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/model"
	"github.com/mfelsing/hourburn/internal/pipeline"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import booked hours from a CSV export",
	Long:  "Import booking rows from a CSV file. Recognizes common time-tracking export layouts, including German column names and decimal commas. With --project, only rows of that scope are imported.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s...\n", path)
	}

	result, err := pipeline.LoadCSV(path)
	if err != nil {
		return err
	}

	bookings := result.Bookings
	if flagProject != "" {
		scope := model.Scope{Project: flagProject, Activity: flagActivity}
		bookings = pipeline.FilterByScope(bookings, scope)
	}
	if len(bookings) == 0 {
		return fmt.Errorf("no usable booking rows in %s", path)
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.SaveBookings(bookings); err != nil {
		return err
	}

	fmt.Printf("\n  Imported %d bookings (%s)\n", len(bookings), cli.FormatHours(pipeline.TotalHours(bookings)))
	if result.Skipped > 0 {
		fmt.Printf("  Skipped %d malformed rows\n", result.Skipped)
	}
	fmt.Println()
	return nil
}
