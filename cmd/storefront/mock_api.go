package main

import (
	"storefront/internal/config"
	"storefront/internal/mockapi"

	"github.com/spf13/cobra"
)

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve an in-memory store API for local use",
	Long: `mock-api serves every endpoint the client uses from memory, seeded with
admin/admin123, supplier/supplier123 and customer/customer123.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.MockAddr
		}
		noSeed, _ := cmd.Flags().GetBool("empty")

		srv := mockapi.New(mockapi.Options{Secret: cfg.MockJWTSecret, NoSeed: noSeed})
		cmd.Printf("Mock API listening on %s\n", addr)
		return srv.Run(addr)
	},
}

func init() {
	mockAPICmd.Flags().String("addr", "", "listen address (overrides mock.addr)")
	mockAPICmd.Flags().Bool("empty", false, "start without demo data")
	rootCmd.AddCommand(mockAPICmd)
}
