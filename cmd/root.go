package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/config"
	"github.com/mfelsing/hourburn/internal/model"
	"github.com/mfelsing/hourburn/internal/store"
)

var (
	flagDBPath   string
	flagProject  string
	flagActivity string
	flagAsOf     string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "hourburn",
	Short: "Project budget burn forecasting CLI",
	Long:  "Forecast budget exhaustion from booked work hours: sprint velocity, trend, and confidence scenarios.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project key")
	rootCmd.PersistentFlags().StringVarP(&flagActivity, "activity", "a", "", "Activity within the project (empty: whole project)")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig is the shared config loading path used by all commands.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// openStore opens the booking database, honoring --db over the config file.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = cfg.General.DBPath
	}
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// resolveScope builds the forecast scope from flags. The project is
// mandatory for scope-bound commands.
func resolveScope() (model.Scope, error) {
	if flagProject == "" {
		return model.Scope{}, fmt.Errorf("a project is required, pass --project")
	}
	return model.Scope{Project: flagProject, Activity: flagActivity}, nil
}

// parseAsOf resolves the --as-of flag, defaulting to now.
func parseAsOf() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q, want YYYY-MM-DD", flagAsOf)
	}
	return t, nil
}
