package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		Load("")

		cfg := Get()
		assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.APITimeout)
		assert.Equal(t, "sqlite", cfg.StoreType)
		assert.Equal(t, "storefront", cfg.StoreNamespace)
		assert.False(t, cfg.NoColor)
		_, err := os.Stat("config.yaml")
		assert.True(t, os.IsNotExist(err), "Load must not write a config file")
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("STOREFRONT_API_BASE_URL", "https://api.example.com")
		t.Setenv("STOREFRONT_STORE_TYPE", "memory")

		Load("")
		assert.Equal(t, "https://api.example.com", Get().APIBaseURL)
		assert.Equal(t, "memory", Get().StoreType)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		path := filepath.Join(dir, "storefront.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: 3s\ncheckout:\n  shipping_address: 1 Elm St\n"), 0o644))

		Load(path)
		cfg := Get()
		assert.Equal(t, 3*time.Second, cfg.APITimeout)
		assert.Equal(t, "1 Elm St", cfg.ShippingAddress)
	})

	t.Run("Integer Timeout Is Seconds", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("api.timeout", 4)
		assert.Equal(t, 4*time.Second, Get().APITimeout)
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
