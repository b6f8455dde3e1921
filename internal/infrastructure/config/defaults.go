package config

import "github.com/bnema/textfocus/internal/domain/entity"

// Default configuration constants
const (
	defaultPlatform  = entity.PlatformDirect
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultCharLimit = 256
)

var defaultDemoFields = []string{"Name", "Email", "Notes"}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Host: HostConfig{
			Platform: defaultPlatform,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Demo: DemoConfig{
			Fields:    append([]string(nil), defaultDemoFields...),
			CharLimit: defaultCharLimit,
		},
	}
}
