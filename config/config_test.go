package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	assert.Nil(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "https://open.er-api.com/v6/latest", cfg.Provider.URL)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "currency_converter.log", cfg.Log.File)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONVERTER_SERVER_ADDR", ":9090")
	t.Setenv("CONVERTER_PROVIDER_TIMEOUT", "2s")

	cfg, err := Load("")

	assert.Nil(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Provider.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yml")

	assert.NotNil(t, err)
}
