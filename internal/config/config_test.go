package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.CNAB.StrictAmounts)
	assert.Equal(t, "company.yaml", cfg.CNAB.CompanyFile)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("CNAB_CNAB_STRICT_AMOUNTS", "true")
	t.Setenv("CNAB_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.True(t, cfg.CNAB.StrictAmounts)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"Defaults are valid", func(c *Config) {}, true},
		{"Bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"Multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, false},
		{"Tab delimiter", func(c *Config) { c.CSV.Delimiter = "\t" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.CSV.Delimiter = ","
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
