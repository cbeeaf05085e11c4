package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/forecast"
)

var (
	flagOverrideHours  float64
	flagOverrideReason string
	flagOverrideAuthor string
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage manual velocity overrides",
}

var overrideSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a manual velocity for a scope",
	RunE:  runOverrideSet,
}

var overrideShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active override for a scope",
	RunE:  runOverrideShow,
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the override for a scope",
	RunE:  runOverrideClear,
}

func init() {
	overrideSetCmd.Flags().Float64Var(&flagOverrideHours, "hours", -1, "Velocity in hours per sprint")
	overrideSetCmd.Flags().StringVar(&flagOverrideReason, "reason", "", "Why the automatic estimate is wrong")
	overrideSetCmd.Flags().StringVar(&flagOverrideAuthor, "author", "", "Who set the override")

	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideShowCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	rootCmd.AddCommand(overrideCmd)
}

func runOverrideSet(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}

	hours := flagOverrideHours
	reason := flagOverrideReason
	author := flagOverrideAuthor
	if author == "" {
		author = loadConfig().General.Author
	}

	// Prompt for anything not given on the command line.
	if hours < 0 || reason == "" {
		hoursStr := ""
		if hours >= 0 {
			hoursStr = strconv.FormatFloat(hours, 'f', -1, 64)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Velocity for %s (hours per sprint)", scope)).
					Value(&hoursStr).
					Validate(func(s string) error {
						v, err := strconv.ParseFloat(s, 64)
						if err != nil {
							return fmt.Errorf("enter a number")
						}
						if v < 0 {
							return fmt.Errorf("must not be negative")
						}
						return nil
					}),
				huh.NewInput().
					Title("Reason").
					Value(&reason),
				huh.NewInput().
					Title("Author").
					Value(&author),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		hours, err = strconv.ParseFloat(hoursStr, 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q", hoursStr)
		}
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ov, err := forecast.NewOverrides(st).Write(scope, hours, reason, author, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("\n  Override set: %s at %s/sprint\n\n", ov.Scope, cli.FormatHours(ov.HoursPerSprint))
	return nil
}

func runOverrideShow(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ov, found, err := forecast.NewOverrides(st).Read(scope)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("\n  No override set for %s\n\n", scope)
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Override %s", ov.Scope),
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Velocity", fmt.Sprintf("%s/sprint", cli.FormatHours(ov.HoursPerSprint))},
			{"Reason", ov.Reason},
			{"Author", ov.Author},
			{"Created", cli.FormatDate(ov.CreatedAt)},
		},
	}))
	fmt.Println()
	return nil
}

func runOverrideClear(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := forecast.NewOverrides(st).Clear(scope); err != nil {
		return err
	}
	fmt.Printf("\n  Override cleared for %s\n\n", scope)
	return nil
}
