// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/folio-chat/internal/locale"
	"github.com/jeranaias/folio-chat/internal/provider"
)

// LanguageAuto selects the copy table from $LANG.
const LanguageAuto = "auto"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete folio configuration.
type Config struct {
	Chat   ChatConfig   `toml:"chat"`
	Remote RemoteConfig `toml:"remote"`
	Mock   MockConfig   `toml:"mock"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// ChatConfig selects the provider and the copy table.
type ChatConfig struct {
	Provider string `toml:"provider"`
	Language string `toml:"language"`

	// RequestTimeoutSecs bounds one provider call. Zero waits indefinitely.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`
}

// RemoteConfig points at the RAG backend.
type RemoteConfig struct {
	BaseURL string `toml:"base_url"`
}

// MockConfig is the simulated latency window of the mock provider.
type MockConfig struct {
	MinDelayMs int `toml:"min_delay_ms"`
	MaxDelayMs int `toml:"max_delay_ms"`
}

// UIConfig contains terminal surface settings.
type UIConfig struct {
	// Featured lets the chat card expand to full width.
	Featured bool `toml:"featured"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`

	// File receives log output while the TUI owns the terminal.
	// Empty discards it.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Chat: ChatConfig{
			Provider:           string(provider.KindRemote),
			Language:           string(locale.DefaultLanguage),
			RequestTimeoutSecs: 60,
		},
		Remote: RemoteConfig{
			BaseURL: provider.DefaultBaseURL,
		},
		Mock: MockConfig{
			MinDelayMs: int(provider.DefaultMockMinDelay / time.Millisecond),
			MaxDelayMs: int(provider.DefaultMockMaxDelay / time.Millisecond),
		},
		UI: UIConfig{
			Featured: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the folio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, ".folio"), nil
}

// ConfigPath returns the path to the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the default config file if it exists, then applies environment
// overrides, defaults and validation. A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); statErr != nil {
		log.WithField("path", path).Debug("no config file, using defaults")
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file. Unlike Load, the
// file must exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadTOML decodes path on top of cfg. Keys absent from the file keep the
// values already in cfg; unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to load config from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	log.WithField("path", path).Debug("loaded config file")
	return nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - RAG_API_URL: overrides remote.base_url
//   - FOLIO_PROVIDER: overrides chat.provider
//   - FOLIO_LANGUAGE: overrides chat.language
//   - FOLIO_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("RAG_API_URL"); v != "" {
		c.Remote.BaseURL = v
	}
	if v := os.Getenv("FOLIO_PROVIDER"); v != "" {
		c.Chat.Provider = v
	}
	if v := os.Getenv("FOLIO_LANGUAGE"); v != "" {
		c.Chat.Language = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// SetDefaults fills empty string fields and normalizes case.
func (c *Config) SetDefaults() {
	d := Default()
	if strings.TrimSpace(c.Chat.Provider) == "" {
		c.Chat.Provider = d.Chat.Provider
	}
	c.Chat.Provider = strings.ToLower(strings.TrimSpace(c.Chat.Provider))
	if strings.TrimSpace(c.Chat.Language) == "" {
		c.Chat.Language = d.Chat.Language
	}
	if strings.TrimSpace(c.Remote.BaseURL) == "" {
		c.Remote.BaseURL = d.Remote.BaseURL
	}
	c.Remote.BaseURL = strings.TrimRight(strings.TrimSpace(c.Remote.BaseURL), "/")
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = d.Log.Level
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	kind, err := provider.ParseKind(c.Chat.Provider)
	if err != nil {
		errs = append(errs, ValidationError{Field: "chat.provider", Message: err.Error()})
	}

	if !strings.EqualFold(strings.TrimSpace(c.Chat.Language), LanguageAuto) {
		if _, err := locale.Parse(c.Chat.Language); err != nil {
			errs = append(errs, ValidationError{Field: "chat.language", Message: err.Error()})
		}
	}

	if c.Chat.RequestTimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "chat.request_timeout_secs",
			Message: fmt.Sprintf("must not be negative, got %d", c.Chat.RequestTimeoutSecs),
		})
	}

	if c.Mock.MinDelayMs < 0 || c.Mock.MaxDelayMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "mock.min_delay_ms",
			Message: "delays must not be negative",
		})
	} else if c.Mock.MinDelayMs > c.Mock.MaxDelayMs {
		errs = append(errs, ValidationError{
			Field:   "mock.min_delay_ms",
			Message: fmt.Sprintf("min delay %dms exceeds max delay %dms", c.Mock.MinDelayMs, c.Mock.MaxDelayMs),
		})
	}

	if kind == provider.KindRemote {
		if err := validateBaseURL(c.Remote.BaseURL); err != nil {
			errs = append(errs, ValidationError{Field: "remote.base_url", Message: err.Error()})
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{Field: "log.level", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return errors.Errorf("URL %q has no host", raw)
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// ProviderKind returns the validated provider kind.
func (c *Config) ProviderKind() provider.Kind {
	kind, err := provider.ParseKind(c.Chat.Provider)
	if err != nil {
		return provider.KindRemote
	}
	return kind
}

// ResolveLanguage returns the copy table language. "auto" negotiates from
// $LANG.
func (c *Config) ResolveLanguage() locale.Language {
	if strings.EqualFold(strings.TrimSpace(c.Chat.Language), LanguageAuto) {
		return locale.Detect(os.Getenv("LANG"))
	}
	lang, err := locale.Parse(c.Chat.Language)
	if err != nil {
		return locale.DefaultLanguage
	}
	return lang
}

// RequestTimeout returns the provider call bound; zero means none.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Chat.RequestTimeoutSecs) * time.Second
}

// MockDelay returns the mock latency window.
func (c *Config) MockDelay() (time.Duration, time.Duration) {
	return time.Duration(c.Mock.MinDelayMs) * time.Millisecond,
		time.Duration(c.Mock.MaxDelayMs) * time.Millisecond
}

// LogLevel returns the parsed log level, info when unset or invalid.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
