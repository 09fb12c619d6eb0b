package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/remotenav/internal/domain/entity"
)

const maxThrottleMs = 2000

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	logFormats = []string{"console", "json"}
)

// validateConfig checks every section and returns all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateInput(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateInject(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateInput(config *Config) []string {
	var validationErrors []string
	if config.Input.ThrottleMs < 0 || config.Input.ThrottleMs > maxThrottleMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("input.throttle_ms must be between 0 and %d", maxThrottleMs))
	}
	if !slices.Contains(Platforms, config.Input.Platform) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("input.platform must be one of %s (got %q)", strings.Join(Platforms, ", "), config.Input.Platform))
	}

	keys := make([]string, 0, len(config.Input.KeyMap))
	for key := range config.Input.KeyMap {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			validationErrors = append(validationErrors, "input.key_map keys must not be empty")
			continue
		}
		if _, err := entity.ParseAction(config.Input.KeyMap[key]); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("input.key_map.%s: %v", key, err))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(logLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	if !slices.Contains(logFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateInject(config *Config) []string {
	if config.Inject.DefaultDelayMs < 0 {
		return []string{"inject.default_delay_ms must be non-negative"}
	}
	return nil
}
