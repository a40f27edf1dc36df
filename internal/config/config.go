package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Package config handles loading, validation, and access to application configuration.

// Config holds the application configuration.
type Config struct {
	Storage struct {
		Format   string `yaml:"format"`    // "json" or "xml"
		DataPath string `yaml:"data_path"` // location of the records file
	} `yaml:"storage"`

	Log struct {
		Path string `yaml:"path"` // location of the operation log
	} `yaml:"log,omitempty"`

	// OnLoadError decides what happens when the data file exists but cannot
	// be parsed at startup: "empty" starts with an empty collection, "exit"
	// terminates.
	OnLoadError string `yaml:"on_load_error,omitempty"`
}

const (
	defaultConfigDirName  = ".registro"
	defaultConfigFileName = "registro.yaml"
	defaultFormat         = "json"
	defaultDataPath       = "data/students.json"
	defaultLogPath        = "logs/registro.log"

	// LoadErrorEmpty and LoadErrorExit are the accepted OnLoadError values.
	LoadErrorEmpty = "empty"
	LoadErrorExit  = "exit"

	// EnvConfigPath overrides the config search path entirely.
	EnvConfigPath = "REGISTRO_CONFIG"
)

// Load tries to load configuration from standard locations.
// Priority: $REGISTRO_CONFIG, ./{fileName}, ~/{dirName}/{fileName}.
// A missing file is not an error: built-in defaults apply. A malformed file
// is reported through the returned warning and defaults apply as well.
func Load() (cfg *Config, warning string, err error) {
	// A .env in the working directory may carry REGISTRO_CONFIG; absence is fine.
	_ = godotenv.Load()

	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		cfg, err := loadFromFile(explicit)
		if err != nil {
			// An explicit path that does not work is a hard error.
			return nil, "", fmt.Errorf("reading config from %s (%s): %w", EnvConfigPath, explicit, err)
		}
		applyDefaults(cfg)
		return cfg, "", cfg.Validate()
	}

	paths := []string{defaultConfigFileName}
	if homeDir, homeErr := os.UserHomeDir(); homeErr == nil {
		paths = append(paths, filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName))
	}

	for _, path := range paths {
		cfg, err := loadFromFile(path)
		if err == nil {
			applyDefaults(cfg)
			return cfg, "", cfg.Validate()
		}
		if os.IsNotExist(err) {
			continue
		}
		// File exists but is unusable: fall back to defaults, report it.
		return Default(), fmt.Sprintf("ignoring config %s: %v", path, err), nil
	}

	return Default(), "", nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err // Propagate error (including os.IsNotExist)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config yaml %s: %w", filePath, err)
	}

	return &cfg, nil
}

// applyDefaults ensures essential fields have default values if not set.
func applyDefaults(cfg *Config) {
	if cfg.Storage.Format == "" {
		cfg.Storage.Format = defaultFormat
	}
	if cfg.Storage.DataPath == "" {
		cfg.Storage.DataPath = defaultDataPath
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaultLogPath
	}
	if cfg.OnLoadError == "" {
		cfg.OnLoadError = LoadErrorEmpty
	}
}

// Validate rejects option values outside the recognized sets.
func (cfg *Config) Validate() error {
	switch cfg.Storage.Format {
	case "json", "xml":
	default:
		return fmt.Errorf("storage.format must be \"json\" or \"xml\", got %q", cfg.Storage.Format)
	}
	switch cfg.OnLoadError {
	case LoadErrorEmpty, LoadErrorExit:
	default:
		return fmt.Errorf("on_load_error must be %q or %q, got %q", LoadErrorEmpty, LoadErrorExit, cfg.OnLoadError)
	}
	return nil
}
