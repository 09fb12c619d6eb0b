package config

// Platforms lists the accepted values of input.platform.
var Platforms = []string{"generic", "playstation", "tizen", "webos", "xbox"}

const defaultThrottleMs = 120

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			ThrottleMs:      defaultThrottleMs,
			HandleAllInputs: false,
			Platform:        "generic",
			DeferBackToHost: false,
			KeyMap:          map[string]string{},
		},
		History: HistoryConfig{
			BackGuard: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Inject: InjectConfig{
			DefaultDelayMs: 0,
		},
	}
}
