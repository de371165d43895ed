// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/strandsdk/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/strandsdk/config.cue on macOS, %APPDATA%\strandsdk\config.cue
// on Windows). The surface is small: the SDK installation path, the precompiled-bundle
// toggle, the feature-flag list, and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
