package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/export"
	"github.com/mfelsing/hourburn/internal/forecast"
	"github.com/mfelsing/hourburn/internal/pipeline"
)

var (
	flagExportOut   string
	flagExportSince string
	flagExportUntil string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookings or forecasts to CSV/JSON",
}

var exportBookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Export booking rows for a scope",
	RunE:  runExportBookings,
}

var exportForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Export the forecast for a scope as JSON",
	RunE:  runExportForecast,
}

var exportBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Export the budget change history for a scope",
	RunE:  runExportBudget,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&flagExportOut, "out", "o", "", "Output file path")
	exportBookingsCmd.Flags().StringVar(&flagExportSince, "since", "", "Only bookings on or after this date (YYYY-MM-DD)")
	exportBookingsCmd.Flags().StringVar(&flagExportUntil, "until", "", "Only bookings before this date (YYYY-MM-DD)")
	exportCmd.AddCommand(exportBookingsCmd)
	exportCmd.AddCommand(exportForecastCmd)
	exportCmd.AddCommand(exportBudgetCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportBookings(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}
	if flagExportOut == "" {
		return fmt.Errorf("an output path is required, pass --out")
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	bookings, err := st.Bookings(scope)
	if err != nil {
		return err
	}

	since, err := parseDateFlag("--since", flagExportSince)
	if err != nil {
		return err
	}
	until, err := parseDateFlag("--until", flagExportUntil)
	if err != nil {
		return err
	}
	bookings = pipeline.FilterByRange(bookings, since, until)

	if isJSONPath(flagExportOut) {
		err = export.BookingsToJSON(bookings, flagExportOut)
	} else {
		err = export.BookingsToCSV(bookings, flagExportOut)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\n  Exported %d bookings to %s\n\n", len(bookings), flagExportOut)
	return nil
}

func runExportForecast(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}
	asOf, err := parseAsOf()
	if err != nil {
		return err
	}
	if flagExportOut == "" {
		return fmt.Errorf("an output path is required, pass --out")
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	bookings, err := st.Bookings(scope)
	if err != nil {
		return err
	}
	target, err := st.TargetHoursAt(scope, asOf)
	if err != nil {
		return err
	}

	projector := forecast.NewProjector(cfg.Params(), st)
	fc, err := projector.Forecast(scope, bookings, target, asOf)
	if err != nil {
		return err
	}

	if err := export.ForecastToJSON(fc, flagExportOut); err != nil {
		return err
	}

	fmt.Printf("\n  Exported forecast for %s to %s\n\n", scope, flagExportOut)
	return nil
}

func runExportBudget(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}
	if flagExportOut == "" {
		return fmt.Errorf("an output path is required, pass --out")
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	entries, err := st.BudgetHistory(scope)
	if err != nil {
		return err
	}

	if err := export.BudgetHistoryToCSV(entries, flagExportOut); err != nil {
		return err
	}

	fmt.Printf("\n  Exported %d budget changes to %s\n\n", len(entries), flagExportOut)
	return nil
}

func isJSONPath(path string) bool {
	return strings.HasSuffix(path, ".json")
}

// parseDateFlag parses an optional date flag; empty means unbounded.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", name, value)
	}
	return t, nil
}
