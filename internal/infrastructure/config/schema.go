package config

import "time"

// Config represents the complete configuration for remotenav.
type Config struct {
	// Input controls key mapping, throttling and dispatch defaults.
	Input InputConfig `mapstructure:"input" yaml:"input" toml:"input" json:"input"`
	// History controls the back-action guard.
	History HistoryConfig `mapstructure:"history" yaml:"history" toml:"history" json:"history"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Inject controls the scripted input playback used by `remotenav inject`.
	Inject InjectConfig `mapstructure:"inject" yaml:"inject" toml:"inject" json:"inject"`
}

// InputConfig holds remote-control input settings.
type InputConfig struct {
	// ThrottleMs swallows repeats of the same key arriving within this many
	// milliseconds. 0 disables throttling.
	ThrottleMs int `mapstructure:"throttle_ms" yaml:"throttle_ms" toml:"throttle_ms" json:"throttle_ms" jsonschema:"minimum=0,maximum=2000,default=120"`
	// HandleAllInputs reports unhandled actions as handled (focus capture).
	HandleAllInputs bool `mapstructure:"handle_all_inputs" yaml:"handle_all_inputs" toml:"handle_all_inputs" json:"handle_all_inputs"`
	// Platform selects the key-code table and controller remap.
	Platform string `mapstructure:"platform" yaml:"platform" toml:"platform" json:"platform" jsonschema:"enum=generic,enum=tizen,enum=webos,enum=xbox,enum=playstation,default=generic"`
	// DeferBackToHost leaves back keys to the host history even when the
	// platform profile would handle them.
	DeferBackToHost bool `mapstructure:"defer_back_to_host" yaml:"defer_back_to_host" toml:"defer_back_to_host" json:"defer_back_to_host"`
	// KeyMap overrides key bindings: key code or key name -> action name.
	KeyMap map[string]string `mapstructure:"key_map" yaml:"key_map" toml:"key_map" json:"key_map,omitempty"`
}

// ThrottleDelay returns the throttle delay as a duration.
func (c InputConfig) ThrottleDelay() time.Duration {
	return time.Duration(c.ThrottleMs) * time.Millisecond
}

// HistoryConfig holds back-guard settings.
type HistoryConfig struct {
	// BackGuard traps host back navigation and re-injects it as a back action.
	BackGuard bool `mapstructure:"back_guard" yaml:"back_guard" toml:"back_guard" json:"back_guard" jsonschema:"default=true"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// InjectConfig holds scripted playback settings.
type InjectConfig struct {
	// DefaultDelayMs is the pause inserted between two consecutive actions
	// that have no explicit delay between them.
	DefaultDelayMs int `mapstructure:"default_delay_ms" yaml:"default_delay_ms" toml:"default_delay_ms" json:"default_delay_ms" jsonschema:"minimum=0,default=0"`
}

// DefaultDelay returns the default inter-action pause.
func (c InjectConfig) DefaultDelay() time.Duration {
	return time.Duration(c.DefaultDelayMs) * time.Millisecond
}
