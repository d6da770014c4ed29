package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable (SCANPRO_API_KEY...).
	EnvPrefix = "SCANPRO"

	DefaultAPIURL    = "https://scanpro.cc/api"
	DefaultOutputDir = "./output"
	DefaultDataDir   = "./data"

	defaultConfigName = ".scanpro"
)

// Config holds the settings of the CLI.
type Config struct {
	APIURL    string `mapstructure:"api_url"`
	APIKey    string `mapstructure:"api_key"`
	OutputDir string `mapstructure:"output_dir"`
	DataDir   string `mapstructure:"data_dir"`
	Lang      string `mapstructure:"lang"`
}

// New returns a viper instance with the defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("api_key", "")
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("data_dir", DefaultDataDir)
	// An empty lang lets the CLI fall back to $LANG.
	v.SetDefault("lang", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads the YAML config file into v and unmarshals the merged settings.
// An explicit configPath must exist; the default $HOME/.scanpro.yaml is optional.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(defaultConfigName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file %s: %w", filepath.Join(home, defaultConfigName+".yaml"), err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings that have no usable fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http(s) address: %s", c.APIURL)
	}
	return nil
}
