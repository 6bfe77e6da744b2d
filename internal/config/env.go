package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches environment variable references in configuration values.
// Supports formats:
//   - ${VAR_NAME} - standard shell-like format
//   - ${VAR_NAME:-default} - with default value if unset or empty
//   - $VAR_NAME - simple format (word characters only)
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// ExpandEnv expands environment variable references in a string.
// It supports the following formats:
//   - ${VAR_NAME} - replaced with value of VAR_NAME
//   - ${VAR_NAME:-default} - replaced with VAR_NAME's value, or "default" if unset/empty
//   - $VAR_NAME - replaced with value of VAR_NAME (simple format)
//
// Unknown or unset variables without defaults are replaced with empty string.
func ExpandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// Check for ${VAR} or ${VAR:-default} format
		if strings.HasPrefix(match, "${") && strings.HasSuffix(match, "}") {
			inner := match[2 : len(match)-1]

			// Check for default value syntax: VAR:-default
			if idx := strings.Index(inner, ":-"); idx >= 0 {
				varName := inner[:idx]
				defaultVal := inner[idx+2:]
				if val := os.Getenv(varName); val != "" {
					return val
				}
				return defaultVal
			}

			// Simple variable reference
			return os.Getenv(inner)
		}

		// Handle $VAR format (simple variable)
		if strings.HasPrefix(match, "$") {
			varName := match[1:]
			return os.Getenv(varName)
		}

		return match
	})
}

// ExpandEnvConfig expands environment variable references in the path,
// color and document fields of cfg, in place.
func ExpandEnvConfig(cfg *Config) {
	ExpandEnvConfigWithOptions(cfg)
}

// EnvConfigOption is a functional option for environment variable expansion.
type EnvConfigOption func(*envConfigOptions)

type envConfigOptions struct {
	expandPaths    bool
	expandDocument bool
}

// defaultEnvConfigOptions returns the default options (all expansion enabled).
func defaultEnvConfigOptions() *envConfigOptions {
	return &envConfigOptions{
		expandPaths:    true,
		expandDocument: true,
	}
}

// WithExpandPaths controls whether Script and Output are expanded.
func WithExpandPaths(expand bool) EnvConfigOption {
	return func(o *envConfigOptions) {
		o.expandPaths = expand
	}
}

// WithExpandDocument controls whether document metadata is expanded.
func WithExpandDocument(expand bool) EnvConfigOption {
	return func(o *envConfigOptions) {
		o.expandDocument = expand
	}
}

// ExpandEnvConfigWithOptions expands environment variables with specific options.
// Background is always expanded.
func ExpandEnvConfigWithOptions(cfg *Config, opts ...EnvConfigOption) {
	if cfg == nil {
		return
	}

	options := defaultEnvConfigOptions()
	for _, opt := range opts {
		opt(options)
	}

	cfg.Background = ExpandEnv(cfg.Background)

	if options.expandPaths {
		cfg.Script = ExpandEnv(cfg.Script)
		cfg.Output = ExpandEnv(cfg.Output)
	}

	if options.expandDocument {
		cfg.Document.Title = ExpandEnv(cfg.Document.Title)
		cfg.Document.Author = ExpandEnv(cfg.Document.Author)
		cfg.Document.Subject = ExpandEnv(cfg.Document.Subject)
	}
}
