package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/glabrego/newsdeck/internal/news"
)

const (
	DefaultAPIBaseURL = "http://localhost:8080"
	defaultTimeout    = 10 * time.Second
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL     string
	ArchiveEnabled bool
	ArchivePath    string
	LogPath        string
	Timeout        time.Duration
	DefaultTab     news.TabID
	DefaultRange   news.Range
}

type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	Archive     *bool  `yaml:"archive,omitempty"`
	ArchivePath string `yaml:"archive_path"`
	LogPath     string `yaml:"log_path"`
	Timeout     string `yaml:"timeout"`
	Tab         string `yaml:"tab"`
	Range       string `yaml:"range"`
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsdeck", "config.yaml")
}

func DefaultArchivePath() string {
	return filepath.Join(xdg.DataHome, "newsdeck", "archive.db")
}

func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "newsdeck", "newsdeck.log")
}

func defaults() Config {
	return Config{
		APIBaseURL:     DefaultAPIBaseURL,
		ArchiveEnabled: true,
		ArchivePath:    DefaultArchivePath(),
		LogPath:        DefaultLogPath(),
		Timeout:        defaultTimeout,
		DefaultTab:     news.TabSocial,
		DefaultRange:   news.DefaultRange,
	}
}

// Load reads settings from .env, the YAML file at path and the NEWSDECK_*
// environment, later sources winning. An empty path means the default
// location, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := cfg.applyFile(path, explicit); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv skips the config file.
func LoadFromEnv() (Config, error) {
	cfg := defaults()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.APIURL != "" {
		c.APIBaseURL = fc.APIURL
	}
	if fc.Archive != nil {
		c.ArchiveEnabled = *fc.Archive
	}
	if fc.ArchivePath != "" {
		c.ArchivePath = fc.ArchivePath
	}
	if fc.LogPath != "" {
		c.LogPath = fc.LogPath
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("config %s: invalid timeout %q: %w", path, fc.Timeout, err)
		}
		c.Timeout = d
	}
	if fc.Tab != "" {
		c.DefaultTab = news.TabID(fc.Tab)
	}
	if fc.Range != "" {
		c.DefaultRange = news.Range(fc.Range)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NEWSDECK_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("NEWSDECK_ARCHIVE_PATH"); v != "" {
		c.ArchivePath = v
	}
	if v := os.Getenv("NEWSDECK_LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("NEWSDECK_ARCHIVE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NEWSDECK_ARCHIVE must be a boolean: %s", v)
		}
		c.ArchiveEnabled = enabled
	}
	if v := os.Getenv("NEWSDECK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NEWSDECK_TIMEOUT must be a duration: %s", v)
		}
		c.Timeout = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("APIBaseURL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("APIBaseURL scheme must be http or https, got %q", u.Scheme)
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.ArchiveEnabled && c.ArchivePath == "" {
		return errors.New("ArchivePath is required when the archive is enabled")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be positive: %s", c.Timeout)
	}
	if _, err := news.ParseTabID(string(c.DefaultTab)); err != nil {
		return fmt.Errorf("DefaultTab: %w", err)
	}
	if _, err := news.ParseRange(string(c.DefaultRange)); err != nil {
		return fmt.Errorf("DefaultRange: %w", err)
	}
	return nil
}
