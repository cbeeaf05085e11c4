package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/model"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List known project scopes with booked hours and targets",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
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

	scopes, err := st.Scopes()
	if err != nil {
		return err
	}
	if len(scopes) == 0 {
		fmt.Println("\n  No bookings recorded yet. Import a CSV first: hourburn import <file.csv>")
		return nil
	}

	rows := make([][]string, 0, len(scopes))
	for _, sum := range scopes {
		scope := model.Scope{Project: sum.Project, Activity: sum.Activity}
		target, err := st.TargetHoursAt(scope, asOf)
		if err != nil {
			return err
		}

		state := "no target"
		if target > 0 {
			remaining := target - sum.BookedHours
			switch {
			case remaining <= 0:
				state = "overbooked"
			case remaining < 0.2*target:
				state = "critical"
			default:
				state = "bookable"
			}
		}

		targetStr := "-"
		if target > 0 {
			targetStr = cli.FormatHours(target)
		}

		rows = append(rows, []string{
			scope.String(),
			cli.FormatHours(sum.BookedHours),
			targetStr,
			fmt.Sprintf("%d", sum.Bookings),
			sum.LastDate.Format("2006-01-02"),
			state,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECT SCOPES"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scope", "Booked", "Target", "Rows", "Last booking", "State"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
