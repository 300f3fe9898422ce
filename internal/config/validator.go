package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateConfig validates configuration values and returns an error listing
// every invalid one. Call it after Load.
func ValidateConfig() error {
	var errors []string

	base := viper.GetString("api.base_url")
	if u, err := url.Parse(base); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, fmt.Sprintf("api.base_url must be an http(s) URL, got: %q", base))
	}

	if viper.IsSet("api.timeout") {
		if timeout := duration("api.timeout"); timeout <= 0 {
			errors = append(errors, fmt.Sprintf("api.timeout must be positive, got: %v", timeout))
		}
	}

	switch strings.ToLower(viper.GetString("store.type")) {
	case "", "sqlite", "sqlite3", "memory":
	case "postgres", "postgresql":
		if viper.GetString("store.dsn") == "" {
			errors = append(errors, "store.dsn is required for the postgres store")
		}
	default:
		errors = append(errors, fmt.Sprintf("store.type must be sqlite, postgres or memory, got: %q", viper.GetString("store.type")))
	}

	if viper.GetString("store.namespace") == "" {
		errors = append(errors, "store.namespace must not be empty")
	}

	if lvl := strings.ToLower(viper.GetString("log.level")); !logLevels[lvl] {
		errors = append(errors, fmt.Sprintf("log.level must be one of debug, info, warn, error, got: %q", lvl))
	}

	for _, key := range []string{"metrics.addr", "mock.addr"} {
		addr := viper.GetString(key)
		if addr == "" {
			continue
		}
		if err := checkAddr(addr); err != nil {
			errors = append(errors, fmt.Sprintf("%s %v", key, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}

func checkAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("must be host:port, got: %q", addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %s", port)
	}
	return nil
}

// ValidateAndExit validates the configuration and exits with a non-zero code if validation fails.
func ValidateAndExit() {
	if err := ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
