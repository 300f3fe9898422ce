package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"storefront/internal/config"
	"storefront/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string
var closeLog = func() {}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Terminal storefront client",
	Long: `storefront is a terminal client for an online store. Customers browse
the catalog, fill a cart and place orders; suppliers ship orders and manage
stock; admins manage accounts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func main() {
	Execute()
}

// Execute runs the root command. A panic anywhere below it, including inside
// the TUI event loop, is reported with its stack and exits 1.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nstorefront crashed: %v\n\n%s\n", r, debug.Stack())
			exit(1)
		}
	}()
	defer func() { closeLog() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'storefront --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the store API (overrides api.base_url)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	closeLog()
	closeLog = telemetry.InitLogger(loggerOptions(false))
	telemetry.LogDebug("configuration loaded", "file", viper.ConfigFileUsed())
}

// loggerOptions builds the logger setup. While the TUI owns the terminal
// nothing is written to the console.
func loggerOptions(tui bool) telemetry.LoggerOptions {
	cfg := config.Get()
	opts := telemetry.LoggerOptions{Level: cfg.LogLevel, File: cfg.LogFile}
	if cfg.Verbose {
		opts.Level = "debug"
		if !tui {
			opts.Console = os.Stderr
		}
	}
	return opts
}
