package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanpro/internal/config"
)

func TestLoadConfig(t *testing.T) {
	tests := map[string]struct {
		file      string
		env       map[string]string
		expConfig config.Config
		expErr    bool
	}{
		"Without file the defaults should be used.": {
			expConfig: config.Config{
				APIURL:    config.DefaultAPIURL,
				OutputDir: config.DefaultOutputDir,
				DataDir:   config.DefaultDataDir,
			},
		},
		"A config file should override the defaults.": {
			file: "api_url: http://localhost:3000/api\napi_key: from-file\nlang: fr\n",
			expConfig: config.Config{
				APIURL:    "http://localhost:3000/api",
				APIKey:    "from-file",
				OutputDir: config.DefaultOutputDir,
				DataDir:   config.DefaultDataDir,
				Lang:      "fr",
			},
		},
		"The environment should override the config file.": {
			file: "api_key: from-file\n",
			env:  map[string]string{"SCANPRO_API_KEY": "from-env", "SCANPRO_OUTPUT_DIR": "/tmp/results"},
			expConfig: config.Config{
				APIURL:    config.DefaultAPIURL,
				APIKey:    "from-env",
				OutputDir: "/tmp/results",
				DataDir:   config.DefaultDataDir,
			},
		},
		"A non HTTP API URL should fail.": {
			file:   "api_url: ftp://scanpro.cc\n",
			expErr: true,
		},
		"A malformed file should fail.": {
			file:   "api_url: [\n",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			// Keep the user's home config out of the test.
			t.Setenv("HOME", t.TempDir())
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			path := ""
			if test.file != "" {
				path = filepath.Join(t.TempDir(), "scanpro.yaml")
				require.NoError(os.WriteFile(path, []byte(test.file), 0o644))
			}

			cfg, err := config.LoadConfig(config.New(), path)
			if test.expErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			assert.Equal(t, test.expConfig, *cfg)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".scanpro.yaml"), []byte("api_key: home-key\n"), 0o644))

	cfg, err := config.LoadConfig(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "home-key", cfg.APIKey)
}
