package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Merge combines another ValidationResult into this one.
func (vr *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	vr.Errors = append(vr.Errors, other.Errors...)
	vr.Warnings = append(vr.Warnings, other.Warnings...)
}

// Validator checks a job before it runs.
type Validator struct {
	// strictMode turns warnings into errors.
	strictMode bool
}

// NewValidator creates a new Validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode enables strict validation where warnings are errors.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strictMode = strict
	return v
}

// Validate performs comprehensive validation of a Config.
func (v *Validator) Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	v.validateSource(cfg, result)
	v.validateCanvas(cfg, result)
	v.validateLua(&cfg.Lua, result)
	v.validateWatch(&cfg.Watch, result)

	if v.strictMode {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = nil
	}
	return result
}

func (v *Validator) validateSource(cfg *Config, result *ValidationResult) {
	if strings.TrimSpace(cfg.Script) == "" {
		result.AddError("script", "is required")
	} else if !strings.EqualFold(filepath.Ext(cfg.Script), ".lua") {
		result.AddWarning("script", fmt.Sprintf("%q does not end in .lua", cfg.Script))
	}

	if cfg.Format < FormatAuto || cfg.Format > FormatTIFF {
		result.AddError("format", fmt.Sprintf("unknown format: %d", cfg.Format))
		return
	}
	if cfg.Output != "" && cfg.Format != FormatAuto {
		if implied := FormatFromPath(cfg.Output); filepath.Ext(cfg.Output) != "" && implied != cfg.Format {
			result.AddWarning("output", fmt.Sprintf("extension of %q does not match format %s", cfg.Output, cfg.Format))
		}
	}
	if cfg.Output != "" && cfg.Output == cfg.Script {
		result.AddError("output", "would overwrite the script")
	}
}

func (v *Validator) validateCanvas(cfg *Config, result *ValidationResult) {
	if cfg.Width <= 0 {
		result.AddError("width", fmt.Sprintf("must be positive, got %d", cfg.Width))
	}
	if cfg.Height <= 0 {
		result.AddError("height", fmt.Sprintf("must be positive, got %d", cfg.Height))
	}
	if cfg.Width > MaxDimension {
		result.AddError("width", fmt.Sprintf("exceeds %d, got %d", MaxDimension, cfg.Width))
	}
	if cfg.Height > MaxDimension {
		result.AddError("height", fmt.Sprintf("exceeds %d, got %d", MaxDimension, cfg.Height))
	}

	const largeDimension = 10000
	if cfg.Width > largeDimension && cfg.Width <= MaxDimension {
		result.AddWarning("width", fmt.Sprintf("unusually large value %d", cfg.Width))
	}
	if cfg.Height > largeDimension && cfg.Height <= MaxDimension {
		result.AddWarning("height", fmt.Sprintf("unusually large value %d", cfg.Height))
	}

	if cfg.Frames < 1 {
		result.AddError("frames", fmt.Sprintf("must be at least 1, got %d", cfg.Frames))
	}
	if cfg.Frames > 1 && !cfg.ResolvedFormat().Vector() {
		result.AddWarning("frames", fmt.Sprintf("%s output keeps only the last of %d frames", cfg.ResolvedFormat(), cfg.Frames))
	}

	bg, ok, err := cfg.BackgroundColor()
	switch {
	case err != nil:
		result.AddError("background", err.Error())
	case ok && bg.A == 0 && !strings.EqualFold(strings.TrimSpace(cfg.Background), "transparent"):
		result.AddWarning("background", "fully transparent background has no effect")
	}
}

func (v *Validator) validateLua(lc *LuaConfig, result *ValidationResult) {
	if lc.CPULimit == 0 {
		result.AddWarning("lua.cpu_limit", "unlimited; a runaway script will never stop")
	}
	if lc.MemoryLimit == 0 {
		result.AddWarning("lua.memory_limit", "unlimited")
	} else if lc.MemoryLimit < 1024*1024 {
		result.AddWarning("lua.memory_limit", fmt.Sprintf("very small limit %d bytes", lc.MemoryLimit))
	}
}

func (v *Validator) validateWatch(wc *WatchConfig, result *ValidationResult) {
	if wc.Debounce < 0 {
		result.AddError("watch.debounce", fmt.Sprintf("must be non-negative, got %v", wc.Debounce))
	}
	if wc.Debounce > time.Minute {
		result.AddWarning("watch.debounce", fmt.Sprintf("very slow debounce %v", wc.Debounce))
	}
}

// ValidateConfig is a convenience function to validate a Config with default settings.
// Returns nil if the config is valid, or an error describing validation failures.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	validator := NewValidator()
	result := validator.Validate(cfg)
	return result.Error()
}

// ValidateConfigStrict validates a Config with strict mode enabled.
// Warnings are treated as errors.
func ValidateConfigStrict(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	validator := NewValidator().WithStrictMode(true)
	result := validator.Validate(cfg)
	return result.Error()
}
