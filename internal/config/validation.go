package config

import (
	"errors"

	internalcue "github.com/grantcarthew/tally/internal/cue"
)

// ValidationResult reports each settings directory checked on its own.
// A directory is Valid only when it holds CUE files that decode cleanly.
type ValidationResult struct {
	GlobalValid, LocalValid bool
	GlobalError, LocalError *internalcue.ValidationError
}

// AnyValid reports whether either directory is valid.
func (r ValidationResult) AnyValid() bool { return r.GlobalValid || r.LocalValid }

// HasErrors reports whether either directory failed validation.
func (r ValidationResult) HasErrors() bool { return r.GlobalError != nil || r.LocalError != nil }

// ValidateConfig checks each existing config directory on its own.
// Directories without .cue files count as "no config", not as errors.
func ValidateConfig(paths Paths) ValidationResult {
	var result ValidationResult

	for _, dir := range paths.ForScope(ScopeGlobal) {
		result.GlobalValid, result.GlobalError = validateDirectory(dir)
	}
	for _, dir := range paths.ForScope(ScopeLocal) {
		result.LocalValid, result.LocalError = validateDirectory(dir)
	}

	return result
}

// validateDirectory returns (true, nil) for valid settings, (false, nil)
// for a directory with no CUE files, and (false, err) otherwise.
func validateDirectory(dir string) (bool, *internalcue.ValidationError) {
	v, err := internalcue.NewLoader().LoadSingle(dir)
	if errors.Is(err, internalcue.ErrNoCUEFiles) {
		return false, nil
	}
	if err != nil {
		if ve := internalcue.FormatErrorWithContext(err); ve != nil {
			if ve.Filename == "" {
				ve.Filename = dir
			}
			return false, ve
		}
		return false, &internalcue.ValidationError{Filename: dir, Message: err.Error()}
	}

	s := Defaults()
	if err := s.apply(v); err != nil {
		var ve *internalcue.ValidationError
		if errors.As(err, &ve) {
			return false, ve
		}
		return false, &internalcue.ValidationError{Filename: dir, Message: err.Error()}
	}

	return true, nil
}
