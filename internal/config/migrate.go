package config

import (
	"fmt"
	"os"

	"github.com/zbiljic/vconfig-go"
)

// loadCreateMigrate loads the file found by FindFile, falling back to the
// defaults when none exists.
func loadCreateMigrate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			// no config file found, return default configuration
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	return loadFile(configPath)
}

// loadFile migrates older layouts to v1. A file without a version is v0.
func loadFile(configPath string) (*Config, error) {
	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}

	var config *Config

	switch version {
	case "", configVersionV0:
		old, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		config = old.migrate()
	case configVersionV1:
		config, err = vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
	default:
		return nil, errUnknownVersion(version)
	}

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(configPath, err)
	}

	return config, nil
}
