package cmd

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/forecast"
)

var (
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render sprint hours as a bar chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 60, "Chart width in columns")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 12, "Chart height in rows")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
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

	params := cfg.Params()
	sprints, err := forecast.Segment(bookings, params.SprintCount, params.SprintLengthDays, asOf)
	if err != nil {
		return err
	}

	barStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent)
	emptyStyle := lipgloss.NewStyle().Foreground(cli.ColorTextDim)

	var bars []barchart.BarData
	// Oldest sprint on the left.
	for i := len(sprints) - 1; i >= 0; i-- {
		s := sprints[i]
		style := barStyle
		if s.TotalHours == 0 {
			style = emptyStyle
		}
		bars = append(bars, barchart.BarData{
			Label: s.Start.Format("Jan 02"),
			Values: []barchart.BarValue{
				{Name: "hours", Value: s.TotalHours, Style: style},
			},
		})
	}

	chart := barchart.New(flagChartWidth, flagChartHeight)
	chart.PushAll(bars)
	chart.Draw()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPRINT HOURS  %s", scope)))
	fmt.Println()
	fmt.Println(chart.View())

	for _, s := range sprints {
		fmt.Printf("  Sprint %d  %s  %s\n", s.Index, cli.FormatSprintWindow(s), cli.FormatHours(s.TotalHours))
	}
	fmt.Println()
	return nil
}
