package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STOREFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", cfgFile, err)
	}
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", "10s")
	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", ".storefront.db")
	viper.SetDefault("store.namespace", "storefront")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "storefront.log")
	viper.SetDefault("metrics.addr", "")
	viper.SetDefault("checkout.shipping_address", "")
	viper.SetDefault("mock.addr", ":8080")
	viper.SetDefault("mock.jwt_secret", "storefront-dev-secret")
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)
}

// Config is a typed snapshot of the loaded settings.
type Config struct {
	APIBaseURL      string
	APITimeout      time.Duration
	StoreType       string
	StoreDSN        string
	StoreNamespace  string
	LogLevel        string
	LogFile         string
	MetricsAddr     string
	ShippingAddress string
	MockAddr        string
	MockJWTSecret   string
	NoColor         bool
	Verbose         bool
}

// Get reads the current viper state into a Config.
func Get() Config {
	return Config{
		APIBaseURL:      viper.GetString("api.base_url"),
		APITimeout:      duration("api.timeout"),
		StoreType:       viper.GetString("store.type"),
		StoreDSN:        viper.GetString("store.dsn"),
		StoreNamespace:  viper.GetString("store.namespace"),
		LogLevel:        viper.GetString("log.level"),
		LogFile:         viper.GetString("log.file"),
		MetricsAddr:     viper.GetString("metrics.addr"),
		ShippingAddress: viper.GetString("checkout.shipping_address"),
		MockAddr:        viper.GetString("mock.addr"),
		MockJWTSecret:   viper.GetString("mock.jwt_secret"),
		NoColor:         viper.GetBool("no_color"),
		Verbose:         viper.GetBool("verbose"),
	}
}

// duration accepts "30s" style values and bare integers as seconds.
func duration(key string) time.Duration {
	switch v := viper.Get(key).(type) {
	case int, int32, int64, float64:
		return time.Duration(viper.GetInt(key)) * time.Second
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return viper.GetDuration(key)
}
