package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testString = `
[GeneralSettings]
    AccountPrefix = "osmo"

[FeeSettings]
    Denom = "uosmo"
    Amount = "2500"
    GasLimit = 300000

[WebServer]
    RestApiInterface = ":9090"
    SimultaneousRequests = 10
    ResponseLoggingThresholdInMicroSeconds = 500

[Logger]
    LogLevel = "*:DEBUG"
`

func TestTomlParser(t *testing.T) {
	t.Parallel()

	cfgExpected := Config{
		GeneralSettings: GeneralSettingsConfig{
			AccountPrefix: "osmo",
		},
		FeeSettings: FeeSettings{
			Denom:    "uosmo",
			Amount:   "2500",
			GasLimit: 300000,
		},
		WebServer: WebServerConfig{
			RestApiInterface:                       ":9090",
			SimultaneousRequests:                   10,
			ResponseLoggingThresholdInMicroSeconds: 500,
		},
		Logger: LoggerConfig{
			LogLevel: "*:DEBUG",
		},
	}

	cfg := Config{}
	err := toml.Unmarshal([]byte(testString), &cfg)
	require.Nil(t, err)
	assert.Equal(t, cfgExpected, cfg)
}

func TestDefaultConfig_MarshalAndCheck(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.Nil(t, CheckConfig(&cfg))

	buff, err := toml.Marshal(cfg)
	require.Nil(t, err)

	recovered := Config{}
	err = toml.Unmarshal(buff, &recovered)
	require.Nil(t, err)
	assert.Equal(t, cfg, recovered)
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	t.Run("invalid account prefix should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.GeneralSettings.AccountPrefix = "Cosmos"
		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, errInvalidAccountPrefix))
	})
	t.Run("empty account prefix is allowed", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.GeneralSettings.AccountPrefix = ""
		assert.Nil(t, CheckConfig(&cfg))
	})
	t.Run("invalid denom should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.FeeSettings.Denom = "u"
		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, errInvalidFeeSettings))
	})
	t.Run("invalid amount should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.FeeSettings.Amount = "-1"
		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, errInvalidFeeSettings))
	})
	t.Run("zero gas limit should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.FeeSettings.GasLimit = 0
		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, errInvalidFeeSettings))
	})
	t.Run("empty rest api interface should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.WebServer.RestApiInterface = ""
		err := CheckConfig(&cfg)
		assert.Equal(t, errEmptyRestApiInterface, err)
	})
	t.Run("zero simultaneous requests should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.WebServer.SimultaneousRequests = 0
		err := CheckConfig(&cfg)
		assert.Equal(t, errInvalidSimultaneousRequests, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.NotNil(t, err)
		assert.Nil(t, cfg)
	})
	t.Run("invalid settings should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		err := os.WriteFile(path, []byte("[FeeSettings]\nDenom = \"uatom\"\n"), 0644)
		require.Nil(t, err)

		cfg, err := LoadConfig(path)
		assert.True(t, errors.Is(err, errInvalidFeeSettings))
		assert.Nil(t, cfg)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		err := os.WriteFile(path, []byte(testString), 0644)
		require.Nil(t, err)

		cfg, err := LoadConfig(path)
		require.Nil(t, err)
		assert.Equal(t, "osmo", cfg.GeneralSettings.AccountPrefix)
		assert.Equal(t, uint64(300000), cfg.FeeSettings.GasLimit)
	})
}
