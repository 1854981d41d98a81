// internal/config/config.go
//
// This package handles configuration and the .yarrow directory structure.
// Settings live in ~/.yarrow/config.yaml (override the root with
// $YARROW_DIR); the same directory holds the log file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/yarrow/internal/divination"
)

const (
	// AppDir is the name of the directory created under the user's home.
	AppDir = ".yarrow"

	// DirEnv overrides the root directory entirely.
	DirEnv = "YARROW_DIR"

	defaultOllamaURL = "http://localhost:11434"
	defaultModel     = "FortuneQwen3_q8:4b"
	defaultTimeout   = 300
)

const defaultConfigYAML = `# yarrow configuration
version: 1

# Ollama endpoint and model used for readings.
ollama_url: http://localhost:11434
model: FortuneQwen3_q8:4b

# Answer in the short fixed two-part format.
concise: true

# Standard deviation of the simulated hand split. Larger values make
# uneven splits more common.
split_spread: 2.0

# Client-side deadline for one generation request, in seconds. 0 disables.
timeout_seconds: 300
`

// Settings models config.yaml.
type Settings struct {
	Version        int     `yaml:"version"`
	OllamaURL      string  `yaml:"ollama_url"`
	Model          string  `yaml:"model"`
	Concise        bool    `yaml:"concise"`
	SplitSpread    float64 `yaml:"split_spread"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Config holds the runtime configuration for yarrow.
type Config struct {
	// Root is the resolved app directory ($YARROW_DIR or ~/.yarrow).
	Root string

	Settings Settings
}

// Dir resolves the app directory without creating it.
func Dir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(DirEnv)); override != "" {
		return filepath.Clean(override), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, AppDir), nil
}

// Load creates the app directory if needed, seeds a commented default
// config.yaml on first run, and returns the parsed configuration.
func Load() (*Config, error) {
	root, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(root)
}

// LoadFrom is Load with an explicit root, used by tests.
func LoadFrom(root string) (*Config, error) {
	if err := os.MkdirAll(filepath.Join(root, "logs"), 0o755); err != nil {
		return nil, fmt.Errorf("config: ensure app dir: %w", err)
	}

	cfg := &Config{Root: root, Settings: defaultSettings()}
	path := cfg.Path()
	if err := ensureDefaultConfig(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Settings = parsed
	return cfg, nil
}

// Path returns the on-disk location of config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Root, "config.yaml")
}

// LogsDir returns the directory holding yarrow.log.
func (c *Config) LogsDir() string {
	return filepath.Join(c.Root, "logs")
}

// Timeout returns the generation deadline as a duration; zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Settings.TimeoutSeconds) * time.Second
}

func defaultSettings() Settings {
	return Settings{
		Version:        1,
		OllamaURL:      defaultOllamaURL,
		Model:          defaultModel,
		Concise:        true,
		SplitSpread:    divination.DefaultSpread,
		TimeoutSeconds: defaultTimeout,
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.OllamaURL) == "" {
		s.OllamaURL = defaultOllamaURL
	}
	if strings.TrimSpace(s.Model) == "" {
		s.Model = defaultModel
	}
	if s.SplitSpread == 0 {
		s.SplitSpread = divination.DefaultSpread
	}
	if s.TimeoutSeconds == 0 {
		s.TimeoutSeconds = defaultTimeout
	}
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if s.SplitSpread < 0 {
		return fmt.Errorf("split_spread must be positive")
	}
	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	return nil
}

func ensureDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
