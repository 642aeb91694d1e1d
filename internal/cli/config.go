package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/advent/internal/fetch"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ADVENT"
)

// Config keys.
const (
	cfgKeyYear        = "year"
	cfgKeyInputDir    = "input_dir"
	cfgKeySessionFile = "session_file"
	cfgKeyBaseURL     = "base_url"
	cfgKeyLogLevel    = "log_level"
	cfgKeyTimeout     = "timeout"
)

// Defaults.
const (
	defaultYear     = 2022
	defaultLogLevel = "info"
	defaultTimeout  = 30 * time.Second
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Year        int    `yaml:"year"`
	InputDir    string `yaml:"input_dir,omitempty"`
	SessionFile string `yaml:"session_file,omitempty"`
	BaseURL     string `yaml:"base_url"`
	LogLevel    string `yaml:"log_level"`
	Timeout     string `yaml:"timeout"`
}

func defaultConfigFile() configFile {
	return configFile{
		Year:     defaultYear,
		BaseURL:  fetch.DefaultBaseURL,
		LogLevel: defaultLogLevel,
		Timeout:  defaultTimeout.String(),
	}
}

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; every key has a default. Year, base URL, log level and
// timeout can be overridden with ADVENT_* environment variables. The input
// directory and session file keep the precedence of the paths package.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyYear, defaultYear)
	v.SetDefault(cfgKeyInputDir, "")
	v.SetDefault(cfgKeySessionFile, "")
	v.SetDefault(cfgKeyBaseURL, fetch.DefaultBaseURL)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyTimeout, defaultTimeout)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyYear, cfgKeyBaseURL, cfgKeyLogLevel, cfgKeyTimeout} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing writes the default config.yaml unless one exists.
// It reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(defaultConfigFile())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# advent CLI configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
