// Package config loads, validates, writes and watches the remotenav
// configuration file with Viper.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	// explicitFile is set when the user passed --config; no default file is
	// created for it.
	explicitFile string
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory or the current directory.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, "")
}

// NewManagerForFile creates a configuration manager bound to path. The file
// format is taken from its extension (toml, yaml, json).
func NewManagerForFile(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	return newManager(v, path)
}

func newManager(v *viper.Viper, explicitFile string) (*Manager, error) {
	// REMOTENAV_INPUT_THROTTLE_MS, REMOTENAV_HISTORY_BACK_GUARD, ...
	v.SetEnvPrefix("REMOTENAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names as logging.NewFromEnv, which runs before config is loaded.
	if err := v.BindEnv("logging.level", "REMOTENAV_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMOTENAV_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "REMOTENAV_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind REMOTENAV_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:        v,
		callbacks:    make([]func(*Config), 0),
		explicitFile: explicitFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.explicitFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if m.explicitFile != "" || !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Input.Platform = strings.ToLower(strings.TrimSpace(config.Input.Platform))
	if config.Input.Platform == "" {
		config.Input.Platform = "generic"
	}
	if config.Input.KeyMap == nil {
		config.Input.KeyMap = map[string]string{}
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return cloneConfig(m.config)
}

func cloneConfig(c *Config) *Config {
	out := *c
	out.Input.KeyMap = maps.Clone(c.Input.KeyMap)
	return &out
}

// Save validates cfg and writes it to the config file. Callbacks registered
// with OnConfigChange are notified once the new configuration is active.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	m.mu.Lock()

	candidate := cloneConfig(cfg)
	normalizeConfig(candidate)
	if err := validateConfig(candidate); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.configFileLocked()
	if path == "" {
		m.mu.Unlock()
		return errors.New("no config file in use")
	}
	if err := WriteConfigOrdered(candidate, path); err != nil {
		m.mu.Unlock()
		return err
	}

	// The watcher will see our own write; it only needs to resync viper.
	if m.watching {
		m.skipNextReload = true
	}
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to re-read saved config: %w", err)
	}
	m.config = candidate
	m.notifyCallbacksLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFileLocked()
}

func (m *Manager) configFileLocked() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.explicitFile
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("input.throttle_ms", defaults.Input.ThrottleMs)
	m.viper.SetDefault("input.handle_all_inputs", defaults.Input.HandleAllInputs)
	m.viper.SetDefault("input.platform", defaults.Input.Platform)
	m.viper.SetDefault("input.defer_back_to_host", defaults.Input.DeferBackToHost)
	m.viper.SetDefault("input.key_map", defaults.Input.KeyMap)

	m.viper.SetDefault("history.back_guard", defaults.History.BackGuard)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("inject.default_delay_ms", defaults.Inject.DefaultDelayMs)
}
