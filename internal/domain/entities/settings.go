package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnvVar points to a settings file when --config is not given.
	ConfigEnvVar = "COPYGITLINK_CONFIG"

	// DefaultRemoteName is the remote whose URL identifies the repository.
	DefaultRemoteName = "origin"
)

// DefaultProviders is the parser order used when none is configured.
func DefaultProviders() []string {
	return []string{"generic", "azuredevops"}
}

// Settings is the top-level configuration for copygitlink.
type Settings struct {
	Providers []string `yaml:"providers" toml:"providers"` // Parser order, first match wins
	Remote    string   `yaml:"remote"    toml:"remote"`    // Remote to read from .git/config
	Copy      bool     `yaml:"copy"      toml:"copy"`      // Push generated links to the clipboard
}

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Providers: DefaultProviders(),
		Remote:    DefaultRemoteName,
	}
}

// NewSettings reads and parses a configuration file. The format is picked
// from the extension: ".toml" is TOML, anything else is YAML.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := &Settings{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, decodeErr := toml.Decode(string(data), settings); decodeErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", decodeErr)
		}
	} else if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings resolves the config file (explicit path, then ConfigEnvVar,
// then the default locations) and falls back to defaults when none exists.
func LoadSettings(explicitPath string) (*Settings, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".copygitlink.yaml",
		".copygitlink.yml",
		".copygitlink.toml",
		"copygitlink.yaml",
		"copygitlink.yml",
		"copygitlink.toml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) applyDefaults() {
	if s.Providers == nil {
		s.Providers = DefaultProviders()
	}
	if s.Remote == "" {
		s.Remote = DefaultRemoteName
	}
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if len(settings.Providers) == 0 {
		return errors.New("at least one provider must be configured")
	}

	seen := make(map[string]bool, len(settings.Providers))
	for i, name := range settings.Providers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("providers[%d] is empty", i)
		}
		if seen[name] {
			return fmt.Errorf("providers[%d]: %q is listed more than once", i, name)
		}
		seen[name] = true
	}

	if strings.TrimSpace(settings.Remote) == "" {
		return errors.New("remote must not be empty")
	}

	return nil
}
