package config

import (
	"errors"
	"fmt"
	"slices"

	"cuelang.org/go/cue"
	internalcue "github.com/grantcarthew/tally/internal/cue"
)

// Settings controls the startup sequence.
type Settings struct {
	EnvFile  string
	Override bool
	Required []string
	LogFile  string
	LogLevel string
	LogName  string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		EnvFile:  ".env",
		Override: true,
		Required: []string{"PASSWORD"},
		LogFile:  "log/app.log",
		LogLevel: "info",
		LogName:  AppName,
	}
}

// fileSettings mirrors the settings struct in CUE. Pointer fields tell an
// omitted field apart from a zero value.
type fileSettings struct {
	EnvFile  *string   `json:"env_file"`
	Override *bool     `json:"override"`
	Required *[]string `json:"required"`
	LogFile  *string   `json:"log_file"`
	LogLevel *string   `json:"log_level"`
	LogName  *string   `json:"log_name"`
}

// LoadResult reports where settings came from.
type LoadResult struct {
	Settings     Settings
	GlobalLoaded bool
	LocalLoaded  bool
}

// Load reads settings from the CUE files under paths and applies them over
// Defaults. No configuration at all yields the defaults.
func Load(paths Paths) (LoadResult, error) {
	result := LoadResult{Settings: Defaults()}

	loaded, err := internalcue.NewLoader().Load(paths.ForScope(ScopeMerged))
	if errors.Is(err, internalcue.ErrNoConfig) {
		return result, nil
	}
	if err != nil {
		return result, internalcue.FormatError(err)
	}
	result.GlobalLoaded = loaded.GlobalLoaded
	result.LocalLoaded = loaded.LocalLoaded

	if err := result.Settings.apply(loaded.Value); err != nil {
		return result, err
	}
	return result, nil
}

// apply overlays the settings struct found in v.
func (s *Settings) apply(v cue.Value) error {
	sv := v.LookupPath(cue.ParsePath(internalcue.KeySettings))
	if !sv.Exists() {
		return nil
	}
	if err := internalcue.Validate(sv, true); err != nil {
		return err
	}

	iter, err := sv.Fields()
	if err != nil {
		return &internalcue.ValidationError{Path: internalcue.KeySettings, Message: "must be a struct"}
	}
	for iter.Next() {
		name := iter.Selector().String()
		if !slices.Contains(internalcue.SettingsKeys, name) {
			return &internalcue.ValidationError{
				Path:    internalcue.KeySettings + "." + name,
				Message: "unknown setting",
			}
		}
	}

	var fs fileSettings
	if err := sv.Decode(&fs); err != nil {
		return fmt.Errorf("decoding settings: %w", internalcue.FormatError(err))
	}

	if fs.EnvFile != nil {
		s.EnvFile = *fs.EnvFile
	}
	if fs.Override != nil {
		s.Override = *fs.Override
	}
	if fs.Required != nil {
		s.Required = *fs.Required
	}
	if fs.LogFile != nil {
		s.LogFile = *fs.LogFile
	}
	if fs.LogLevel != nil {
		s.LogLevel = *fs.LogLevel
	}
	if fs.LogName != nil {
		s.LogName = *fs.LogName
	}
	return nil
}
