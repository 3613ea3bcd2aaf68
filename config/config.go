package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"go-currency-converter/erapi"
)

// Config the application configuration
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr string
	Mode string
}

type ProviderConfig struct {
	URL     string
	Timeout time.Duration
}

type LogConfig struct {
	File string
}

const (
	DefaultAddr    = ":8080"
	DefaultMode    = "release"
	DefaultLogFile = "currency_converter.log"
)

// Load reads configuration from an optional config file and the
// environment (prefix CONVERTER), falling back to defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.mode", DefaultMode)
	v.SetDefault("provider.url", erapi.DefaultURL)
	v.SetDefault("provider.timeout", erapi.DefaultTimeout)
	v.SetDefault("log.file", DefaultLogFile)

	v.SetEnvPrefix("CONVERTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
			Mode: v.GetString("server.mode"),
		},
		Provider: ProviderConfig{
			URL:     v.GetString("provider.url"),
			Timeout: v.GetDuration("provider.timeout"),
		},
		Log: LogConfig{
			File: v.GetString("log.file"),
		},
	}, nil
}
