// Package cmd implements the hourburn CLI commands.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/config"
	"github.com/mfelsing/hourburn/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current defaults",
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (e.g. general.author, api.addr, forecast.sprint_count)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	dbPath := cfg.General.DBPath
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}
	fmt.Printf("    Database: %s\n", dbPath)
	if cfg.General.Author != "" {
		fmt.Printf("    Author:   %s\n", cfg.General.Author)
	}
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Sprint count:    %d\n", cfg.Forecast.SprintCount)
	fmt.Printf("    Sprint length:   %dd\n", cfg.Forecast.SprintLengthDays)
	fmt.Printf("    Weights:         %v\n", cfg.Forecast.Weights)
	fmt.Printf("    Band multiplier: %.1f\n", cfg.Forecast.BandMultiplier)
	fmt.Printf("    Trend threshold: %.1fh\n", cfg.Forecast.TrendThreshold)
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Address: %s\n", cfg.API.Addr)
	fmt.Println()

	fmt.Println("  Run `hourburn config init` to write a config file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "general.db_path":
		cfg.General.DBPath = value
	case "general.author":
		cfg.General.Author = value
	case "api.addr":
		cfg.API.Addr = value
	case "forecast.sprint_count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer, got %q", key, value)
		}
		cfg.Forecast.SprintCount = n
	case "forecast.sprint_length_days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer, got %q", key, value)
		}
		cfg.Forecast.SprintLengthDays = n
	case "forecast.band_multiplier":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s wants a number, got %q", key, value)
		}
		cfg.Forecast.BandMultiplier = f
	case "forecast.trend_threshold":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s wants a number, got %q", key, value)
		}
		cfg.Forecast.TrendThreshold = f
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Set %s = %s\n", key, value)
	return nil
}
