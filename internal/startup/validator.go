// Package startup checks that required configuration values are present
// before the program does any work.
package startup

import (
	"github.com/grantcarthew/tally/internal/env"
	"github.com/sirupsen/logrus"
)

// ConfigError reports a required value missing from the environment.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return e.Key + " environment variable not set"
}

// Validator looks up required values and logs the outcome of each check.
// It keeps no state between calls.
type Validator struct {
	source env.Source
	log    logrus.FieldLogger
}

// NewValidator creates a validator reading from source and logging to log.
// A nil source defines no keys.
func NewValidator(source env.Source, log logrus.FieldLogger) *Validator {
	if source == nil {
		source = env.Map(nil)
	}
	return &Validator{source: source, log: log}
}

// Require returns the value of name. A missing key yields a *ConfigError.
// Exactly one record is logged per call: INFO on success, ERROR on failure.
func (v *Validator) Require(name string) (string, error) {
	value, ok := v.source.Lookup(name)
	if !ok {
		err := &ConfigError{Key: name}
		v.log.WithField("key", name).Error(err.Error())
		return "", err
	}

	v.log.WithField("key", name).Info(name + " loaded")
	return value, nil
}

// RequireAll checks names in order and stops at the first missing key.
func (v *Validator) RequireAll(names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := v.Require(name)
		if err != nil {
			return nil, err
		}
		values[name] = value
	}
	return values, nil
}
