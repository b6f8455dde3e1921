package config

import "github.com/bnema/textfocus/internal/domain/entity"

// Config represents the complete configuration for textfocus.
type Config struct {
	// Host selects how focus changes reach the host views.
	Host    HostConfig    `mapstructure:"host" toml:"host" json:"host"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Demo configures the terminal form started by `textfocus demo`.
	Demo DemoConfig `mapstructure:"demo" toml:"demo" json:"demo"`
}

// HostConfig holds host dispatch settings.
type HostConfig struct {
	// Platform is "direct" (focus/blur calls on the view), "command" (symbolic
	// view commands) or "none" (track focus only). Unknown values act as "none".
	Platform entity.Platform `mapstructure:"platform" toml:"platform" json:"platform" jsonschema:"enum=direct,enum=command,enum=none,default=direct"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File receives logs while the terminal UI owns the screen.
	// Empty means textfocus.log in the XDG state directory.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

// DemoConfig describes the fields mounted when the demo form starts.
type DemoConfig struct {
	Fields    []string `mapstructure:"fields" toml:"fields" json:"fields"`
	CharLimit int      `mapstructure:"char_limit" toml:"char_limit" json:"char_limit" jsonschema:"minimum=0"`
}
