package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/zbiljic/vconfig-go"
)

const (
	fileName       = "autocommit.json"
	hiddenFileName = ".autocommit.json"
	configDirName  = "autocommit"
)

var (
	// loaded once per process
	cachedConfig *Config
	// guards cachedConfig and writes to the file
	configMutex = &sync.Mutex{}
)

// Load returns the first configuration file found by FindFile, migrated to
// the current version, or the defaults when there is none.
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadCreateMigrate()
	if err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// Save writes config to filename, creating its directory.
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// update the cached config so subsequent loads see saved state
	cachedConfig = config

	return nil
}

// FindFile returns the first existing path from GetSearchPaths.
func FindFile() (string, error) {
	searchPaths := GetSearchPaths()

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths lists candidate files from the working directory up to the
// user configuration directory. Parent directories are searched for
// autocommit.json until the home directory is reached.
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// ./.autocommit.json
	paths = append(paths, filepath.Join(cwd, hiddenFileName))

	// ./autocommit.json
	paths = append(paths, filepath.Join(cwd, fileName))

	// ../autocommit.json and further up, stopping below the home directory
	dir := cwd
	homeDir := lo.Must(os.UserHomeDir())
	for {
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, fileName))
	}

	// ~/.config/autocommit/autocommit.json
	paths = append(paths, GetDefaultPath())

	// ~/.autocommit.json, where older releases kept an unversioned file
	paths = append(paths, filepath.Join(homeDir, hiddenFileName))

	return paths
}

// GetPath reports the file Load would read, if any.
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath is where `autocommit config init` writes.
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())

	return filepath.Join(homeDir, ".config", configDirName, fileName)
}

// ResetCache forgets the loaded configuration.
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
