package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// Loader handles configuration loading and merging.
type Loader struct {
	v           *viper.Viper
	configPath  string
	searchPaths []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("VERGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:           v,
		searchPaths: []string{"."},
	}
}

// WithConfigPath sets an explicit config file path.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithSearchPaths adds directories to search for config files.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = append(l.searchPaths, paths...)
	return l
}

// Load loads the configuration, layering file values over defaults and
// environment variables over both.
func (l *Loader) Load() (*Config, error) {
	const op = "config.Load"

	l.setDefaults()

	if err := l.loadConfigFile(); err != nil {
		return nil, verrors.ConfigWrap(err, op, "failed to load config file")
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, verrors.ConfigWrap(err, op, "failed to unmarshal config")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default values using Viper.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("versioning.tag_format", defaults.Versioning.TagFormat)
	l.v.SetDefault("versioning.initial", defaults.Versioning.Initial)
	l.v.SetDefault("versioning.major_on_zero", defaults.Versioning.MajorOnZero)

	l.v.SetDefault("parser.convention", defaults.Parser.Convention)

	l.v.SetDefault("branches", defaults.Branches)

	l.v.SetDefault("history.orphan_policy", defaults.History.OrphanPolicy)

	l.v.SetDefault("changelog.title", defaults.Changelog.Title)
	l.v.SetDefault("changelog.file", defaults.Changelog.File)
	l.v.SetDefault("changelog.link_commits", defaults.Changelog.LinkCommits)

	l.v.SetDefault("git.default_remote", defaults.Git.DefaultRemote)
	l.v.SetDefault("git.annotate", defaults.Git.Annotate)

	l.v.SetDefault("output.log_level", defaults.Output.LogLevel)
	l.v.SetDefault("output.color", defaults.Output.Color)
	l.v.SetDefault("output.json", defaults.Output.JSON)
}

// loadConfigFile loads the configuration file. A missing file is not an
// error; defaults apply.
func (l *Loader) loadConfigFile() error {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", l.configPath, err)
		}
		return nil
	}

	for _, searchPath := range l.searchPaths {
		for _, name := range ConfigFileNames {
			for _, ext := range ConfigFileExtensions {
				configFile := filepath.Join(searchPath, name+"."+ext)
				if _, err := os.Stat(configFile); err == nil {
					l.v.SetConfigFile(configFile)
					if err := l.v.ReadInConfig(); err != nil {
						return fmt.Errorf("reading config file %s: %w", configFile, err)
					}
					return nil
				}
			}
		}
	}

	return nil
}

// GetConfigPath returns the path to the loaded config file, if any.
func (l *Loader) GetConfigPath() string {
	return l.v.ConfigFileUsed()
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}

// LoadFromDirectory loads configuration from a directory.
func LoadFromDirectory(dir string) (*Config, error) {
	return NewLoader().WithSearchPaths(dir).Load()
}

// FindConfigFile searches for a config file and returns its path.
func FindConfigFile(searchPaths ...string) (string, error) {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}

	for _, searchPath := range searchPaths {
		for _, name := range ConfigFileNames {
			for _, ext := range ConfigFileExtensions {
				configFile := filepath.Join(searchPath, name+"."+ext)
				if _, err := os.Stat(configFile); err == nil {
					return configFile, nil
				}
			}
		}
	}

	return "", verrors.NotFound("config.FindConfigFile", "no config file found")
}
