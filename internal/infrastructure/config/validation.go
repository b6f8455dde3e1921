package config

import (
	"fmt"
	"strings"

	"github.com/bnema/textfocus/internal/logging"
)

// validateConfig collects every invalid value into one error. rawPlatform is
// host.platform as written, before normalization folds unknown names into none.
func validateConfig(config *Config, rawPlatform string) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHost(rawPlatform)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDemo(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// validateHost rejects near misses of a known platform. Other unknown names
// are accepted and track focus only.
func validateHost(rawPlatform string) []string {
	if suggestion, ok := SuggestPlatform(rawPlatform); ok {
		return []string{fmt.Sprintf("host.platform %q is not a known platform (did you mean %q?)", rawPlatform, suggestion)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateDemo(config *Config) []string {
	var validationErrors []string
	if config.Demo.CharLimit < 0 {
		validationErrors = append(validationErrors, "demo.char_limit must be non-negative")
	}
	seen := make(map[string]struct{}, len(config.Demo.Fields))
	for _, f := range config.Demo.Fields {
		if _, dup := seen[f]; dup {
			validationErrors = append(validationErrors, fmt.Sprintf("demo.fields contains %q twice", f))
		}
		seen[f] = struct{}{}
	}
	return validationErrors
}
