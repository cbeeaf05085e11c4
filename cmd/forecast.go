package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/forecast"
	"github.com/mfelsing/hourburn/internal/model"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast budget exhaustion for a project scope",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}
	asOf, err := parseAsOf()
	if err != nil {
		return err
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

	renderForecast(fc)
	return nil
}

func renderForecast(fc model.BudgetForecast) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET FORECAST  %s", fc.Scope)))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderStatus(fc.Status))

	rows := [][]string{
		{"As of", cli.FormatDate(fc.AsOf)},
		{"Target", cli.FormatHours(fc.TargetHours)},
		{"Booked", cli.FormatHours(fc.ActualHours)},
		{"Remaining", cli.FormatHours(fc.RemainingHours)},
		{"---"},
		{"Velocity", fmt.Sprintf("%s/sprint", cli.FormatHours(fc.Estimate.WeightedAverage))},
		{"Std deviation", cli.FormatHours(fc.Estimate.StdDeviation)},
		{"Confidence", cli.FormatPercent(fc.Estimate.Confidence)},
		{"Trend", cli.FormatTrend(fc.Trend)},
	}
	if fc.Override != nil {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Override", fmt.Sprintf("%s/sprint (%s)",
			cli.FormatHours(fc.Override.HoursPerSprint), fc.Override.Author)})
		rows = append(rows, []string{"Reason", fc.Override.Reason})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Confidence %s %s\n",
		cli.RenderConfidenceBar(fc.Estimate.Confidence, 20),
		cli.FormatPercent(fc.Estimate.Confidence))

	if fc.Scenarios == nil {
		fmt.Println()
		return
	}

	fmt.Println()
	scenarioRows := [][]string{
		scenarioRow(fc.Scenarios.Optimistic),
		scenarioRow(fc.Scenarios.Realistic),
		scenarioRow(fc.Scenarios.Pessimistic),
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scenarios",
		Headers: []string{"Scenario", "P", "Velocity", "Days left", "Projected end"},
		Rows:    scenarioRows,
	}))
	fmt.Println()
}

func scenarioRow(sc model.ForecastScenario) []string {
	end := cli.FormatDate(sc.ProjectedEnd)
	days := cli.FormatDays(sc.DaysRemaining)
	switch {
	case sc.Exhausted:
		end = "exhausted"
		days = "0d"
	case sc.Unbounded:
		end = "never"
		days = "∞"
	}
	return []string{
		sc.Label,
		fmt.Sprintf("%d%%", sc.Probability),
		fmt.Sprintf("%s/sprint", cli.FormatHours(sc.VelocityUsed)),
		days,
		end,
	}
}
