package main

import (
	"context"
	"fmt"

	"storefront/internal/router"
	"storefront/internal/telemetry"
	"storefront/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var newProgram = func(m tea.Model) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(m, tea.WithAltScreen())
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive storefront (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func init() {
	tuiCmd.Flags().String("view", "", "view to open instead of the landing view (home, products, cart, orders, ...)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command) error {
	closeLog()
	closeLog = telemetry.InitLogger(loggerOptions(true))

	var start router.View
	if name, _ := cmd.Flags().GetString("view"); name != "" {
		v, ok := router.Parse(name)
		if !ok {
			return fmt.Errorf("unknown view %q", name)
		}
		start = v
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()
	if start != "" {
		e.ctrl.Navigate(start)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if addr := e.cfg.MetricsAddr; addr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(ctx, addr, e.metrics.Handler()); err != nil {
				telemetry.LogError("metrics server stopped", err, "addr", addr)
			}
		}()
	}

	m := ui.New(ui.Options{
		Controller:      e.ctrl,
		Backend:         e.client,
		Timeout:         e.cfg.APITimeout,
		ShippingAddress: e.cfg.ShippingAddress,
		NoColor:         e.cfg.NoColor,
	})
	telemetry.LogInfo("starting TUI", "view", m.Shown(), "api", e.cfg.APIBaseURL)
	if _, err := newProgram(m).Run(); err != nil {
		return fmt.Errorf("error running storefront TUI: %w", err)
	}
	return nil
}
