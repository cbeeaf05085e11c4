package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mfelsing/hourburn/internal/api"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve forecasts over a local HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default: config or 127.0.0.1:8491)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	addr := flagServeAddr
	if addr == "" {
		addr = cfg.API.Addr
	}
	if addr == "" {
		addr = api.DefaultAddr
	}

	svc := api.New(api.Config{
		Addr:   addr,
		Params: cfg.Params(),
	}, st)

	fmt.Printf("  hourburn api listening on http://%s\n", addr)
	fmt.Printf("  Try: curl http://%s/v1/projects\n", addr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
