package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults Are Valid",
			wantError: false,
		},
		{
			name: "Valid Configuration",
			setup: func() {
				viper.Set("api.base_url", "https://shop.example.com")
				viper.Set("api.timeout", "30s")
				viper.Set("store.type", "memory")
				viper.Set("metrics.addr", "127.0.0.1:2112")
				viper.Set("log.level", "debug")
			},
			wantError: false,
		},
		{
			name: "Invalid Base URL",
			setup: func() {
				viper.Set("api.base_url", "localhost:8080")
			},
			wantError: true,
			errMsg:    "api.base_url must be an http(s) URL",
		},
		{
			name: "Invalid Timeout (Negative Duration)",
			setup: func() {
				viper.Set("api.timeout", -10*time.Second)
			},
			wantError: true,
			errMsg:    "api.timeout must be positive",
		},
		{
			name: "Invalid Timeout (Negative Int)",
			setup: func() {
				viper.Set("api.timeout", -10)
			},
			wantError: true,
			errMsg:    "api.timeout must be positive",
		},
		{
			name: "Unknown Store Type",
			setup: func() {
				viper.Set("store.type", "redis")
			},
			wantError: true,
			errMsg:    "store.type must be sqlite, postgres or memory",
		},
		{
			name: "Postgres Without DSN",
			setup: func() {
				viper.Set("store.type", "postgres")
				viper.Set("store.dsn", "")
			},
			wantError: true,
			errMsg:    "store.dsn is required",
		},
		{
			name: "Empty Namespace",
			setup: func() {
				viper.Set("store.namespace", "")
			},
			wantError: true,
			errMsg:    "store.namespace must not be empty",
		},
		{
			name: "Invalid Log Level",
			setup: func() {
				viper.Set("log.level", "verbose")
			},
			wantError: true,
			errMsg:    "log.level must be one of",
		},
		{
			name: "Invalid Metrics Port",
			setup: func() {
				viper.Set("metrics.addr", ":99999")
			},
			wantError: true,
			errMsg:    "metrics.addr port must be between 1 and 65535",
		},
		{
			name: "Mock Addr Without Port",
			setup: func() {
				viper.Set("mock.addr", "localhost")
			},
			wantError: true,
			errMsg:    "mock.addr must be host:port",
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set("api.timeout", -5)
				viper.Set("store.type", "redis")
			},
			wantError: true,
			errMsg:    "configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()

			if tt.setup != nil {
				tt.setup()
			}

			err := ValidateConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("ValidateConfig() expected error, got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateConfig() unexpected error: %v", err)
				}
			}
		})
	}
	viper.Reset()
}

func TestValidateConfig_ListsEveryProblem(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("api.timeout", -5)
	viper.Set("log.level", "loud")

	err := ValidateConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"api.timeout", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
