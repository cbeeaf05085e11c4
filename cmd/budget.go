package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/cli"
	"github.com/mfelsing/hourburn/internal/model"
)

var (
	flagBudgetHours     float64
	flagBudgetType      string
	flagBudgetValidFrom string
	flagBudgetReason    string
	flagBudgetRef       string
	flagBudgetAuthor    string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the budget history of a scope",
}

var budgetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a budget change (initial, extension, correction, reduction)",
	RunE:  runBudgetAdd,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the target hours valid at a date",
	RunE:  runBudgetShow,
}

var budgetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List all budget changes for a scope",
	RunE:  runBudgetHistory,
}

func init() {
	budgetAddCmd.Flags().Float64Var(&flagBudgetHours, "hours", 0, "Hours delta (negative for reductions)")
	budgetAddCmd.Flags().StringVar(&flagBudgetType, "type", "extension", "Change type: initial, extension, correction, reduction")
	budgetAddCmd.Flags().StringVar(&flagBudgetValidFrom, "valid-from", "", "Effective date YYYY-MM-DD (default: today)")
	budgetAddCmd.Flags().StringVar(&flagBudgetReason, "reason", "", "Why the budget changed")
	budgetAddCmd.Flags().StringVar(&flagBudgetRef, "ref", "", "External reference, e.g. a change request number")
	budgetAddCmd.Flags().StringVar(&flagBudgetAuthor, "author", "", "Who recorded the change")

	budgetCmd.AddCommand(budgetAddCmd)
	budgetCmd.AddCommand(budgetShowCmd)
	budgetCmd.AddCommand(budgetHistoryCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetAdd(_ *cobra.Command, _ []string) error {
	scope, err := resolveScope()
	if err != nil {
		return err
	}

	changeType := model.ChangeType(flagBudgetType)
	if !changeType.Valid() {
		return fmt.Errorf("unknown change type %q, want initial, extension, correction, or reduction", flagBudgetType)
	}
	if flagBudgetReason == "" {
		return fmt.Errorf("a reason is required, pass --reason")
	}

	validFrom := time.Now()
	if flagBudgetValidFrom != "" {
		validFrom, err = time.Parse("2006-01-02", flagBudgetValidFrom)
		if err != nil {
			return fmt.Errorf("invalid --valid-from %q, want YYYY-MM-DD", flagBudgetValidFrom)
		}
	}

	cfg := loadConfig()
	author := flagBudgetAuthor
	if author == "" {
		author = cfg.General.Author
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	entry := model.BudgetEntry{
		Project:    scope.Project,
		Activity:   scope.Activity,
		Hours:      flagBudgetHours,
		ChangeType: changeType,
		ValidFrom:  validFrom,
		Reason:     flagBudgetReason,
		Reference:  flagBudgetRef,
		CreatedBy:  author,
		CreatedAt:  time.Now(),
	}
	if err := st.AddBudgetEntry(entry); err != nil {
		return err
	}

	target, err := st.TargetHoursAt(scope, validFrom)
	if err != nil {
		return err
	}
	fmt.Printf("\n  Recorded %s of %s for %s\n", changeType, cli.FormatHours(flagBudgetHours), scope)
	fmt.Printf("  Target from %s: %s\n\n", validFrom.Format("2006-01-02"), cli.FormatHours(target))
	return nil
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
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

	target, err := st.TargetHoursAt(scope, asOf)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Target for %s at %s: %s\n\n", scope, asOf.Format("2006-01-02"), cli.FormatHours(target))
	return nil
}

func runBudgetHistory(_ *cobra.Command, _ []string) error {
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

	entries, err := st.BudgetHistory(scope)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("\n  No budget history for %s\n\n", scope)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		ref := e.Reference
		if ref == "" {
			ref = "-"
		}
		rows = append(rows, []string{
			e.ValidFrom.Format("2006-01-02"),
			string(e.ChangeType),
			cli.FormatHours(e.Hours),
			ref,
			e.Reason,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Budget history %s", scope),
		Headers: []string{"Valid from", "Type", "Hours", "Ref", "Reason"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
