// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSDKPath is returned when an SDKPath value is whitespace-only.
	ErrInvalidSDKPath = errors.New("invalid sdk path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SDKPath represents a filesystem path to an SDK installation root.
	// The zero value ("") is valid and means "locate automatically".
	// Non-zero values must not be whitespace-only.
	SDKPath string

	// InvalidSDKPathError is returned when an SDKPath value is non-empty but
	// whitespace-only. It wraps ErrInvalidSDKPath for errors.Is() compatibility.
	InvalidSDKPathError struct {
		Value SDKPath
	}

	// UIConfig holds terminal presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		// SDKPath is the SDK installation root. Empty means "locate
		// automatically from the executable's path".
		SDKPath SDKPath `mapstructure:"sdk_path"`

		// UseBundle enables precompiled-bundle loading.
		UseBundle bool `mapstructure:"use_bundle"`

		// Features are the feature flags enabled before context binding.
		Features []string `mapstructure:"features"`

		// UI holds terminal presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// InvalidConfigError aggregates every validation failure found in a
	// Config. It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Errs []error
	}
)

// IsValid returns whether the ColorScheme is one of the recognized values.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: must be one of auto, dark, light", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the SDKPath is valid. Empty is valid; a non-empty
// value must contain something other than whitespace.
func (p SDKPath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSDKPathError{Value: p}}
	}
	return true, nil
}

// String returns the string representation of the SDKPath.
func (p SDKPath) String() string { return string(p) }

// Error implements the error interface for InvalidSDKPathError.
func (e *InvalidSDKPathError) Error() string {
	return fmt.Sprintf("invalid sdk path %q: must not be whitespace-only", string(e.Value))
}

// Unwrap returns ErrInvalidSDKPath for errors.Is() compatibility.
func (e *InvalidSDKPathError) Unwrap() error { return ErrInvalidSDKPath }

// IsValid returns whether the whole Config is valid, aggregating every
// field-level failure.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	if ok, fieldErrs := c.SDKPath.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if err := validateFeatures(c.Features); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{Errs: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// validateFeatures checks the one constraint CUE cannot express: feature
// names must be unique within the list.
func validateFeatures(features []string) error {
	seen := make(map[string]int)
	for i, name := range features {
		if first, exists := seen[name]; exists {
			return fmt.Errorf("features[%d]: duplicate feature %q (same as features[%d])", i, name, first)
		}
		seen[name] = i
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		SDKPath:   "",
		UseBundle: false,
		Features:  nil,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
