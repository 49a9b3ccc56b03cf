package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juno-cash/junoup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the tool. Anything else in the config file is rejected
// by schema validation.
const (
	KeyRepo       = "repo"
	KeyBinaryName = "binary_name"
	KeyBinaryPath = "binary_path"
	KeyMirror     = "mirror"
)

// KnownKeys lists every supported config key, for the config subcommands.
var KnownKeys = []string{KeyRepo, KeyBinaryName, KeyBinaryPath, KeyMirror}

// Dir returns the path to the config directory (~/.junoup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.junoup/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; every key has a branded default.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Repo returns the repository to check, falling back to the branded default.
func Repo() string {
	if v := Get(KeyRepo); v != "" {
		return v
	}
	return branding.GitHubRepo()
}

// BinaryName returns the daemon binary name to look for inside archives.
func BinaryName() string {
	if v := Get(KeyBinaryName); v != "" {
		return v
	}
	return branding.BinaryName()
}

// BinaryPath returns the expected location of the local daemon binary.
// The default sits next to the working directory, matching how node
// operators typically lay out a fresh install.
func BinaryPath() string {
	if v := Get(KeyBinaryPath); v != "" {
		return v
	}
	return "./" + branding.BinaryName()
}

// Mirror returns the configured download mirror, or "" when downloads go
// straight to the release host.
func Mirror() string {
	return Get(KeyMirror)
}
