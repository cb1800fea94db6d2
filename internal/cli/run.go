package cli

import (
	"fmt"

	"github.com/grantcarthew/tally/internal/app"
	"github.com/grantcarthew/tally/internal/env"
	"github.com/grantcarthew/tally/internal/logging"
	"github.com/spf13/cobra"
)

// runStart executes the startup sequence: logging, env file, validation,
// sample tables. A missing required value returns a startup.ConfigError.
func runStart(cmd *cobra.Command, args []string) error {
	flags := getFlags(cmd)

	settings, _, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Name:    settings.LogName,
		Level:   settings.LogLevel,
		Console: cmd.ErrOrStderr(),
		Color:   colorEnabled(flags, cmd.ErrOrStderr()),
		Quiet:   flags.Quiet,
		File:    settings.LogFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if settings.EnvFile != "" {
		loaded, err := env.LoadFile(settings.EnvFile, settings.Override)
		if err != nil {
			logger.WithError(err).Error("env file could not be loaded")
			return fmt.Errorf("loading env file: %w", err)
		}
		log := logger.WithField("path", settings.EnvFile)
		if loaded.Found {
			log.Debugf("env file loaded: %d set, %d kept", len(loaded.Set), len(loaded.Skipped))
		} else {
			log.Debug("env file not found")
		}
	}

	_, err = app.Run(app.Options{
		Logger:   logger,
		Source:   env.Process{},
		Required: settings.Required,
	})
	return err
}
