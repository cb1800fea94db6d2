package cli

import (
	"github.com/grantcarthew/tally/internal/config"
	"github.com/spf13/cobra"
)

// Flags holds the persistent flag values for one command tree.
type Flags struct {
	EnvFile    string
	NoOverride bool
	Require    []string
	LogFile    string
	LogLevel   string
	Directory  string
	Quiet      bool
	Verbose    bool
	NoColor    bool
}

type flagsKey struct{}

// getFlags returns the flags stored by the root PersistentPreRunE.
func getFlags(cmd *cobra.Command) *Flags {
	if cmd.Context() != nil {
		if f, ok := cmd.Context().Value(flagsKey{}).(*Flags); ok {
			return f
		}
	}
	return &Flags{}
}

// resolveSettings loads CUE settings for the working directory and applies
// any flags the user set explicitly. Relative paths are made absolute.
func resolveSettings(cmd *cobra.Command) (config.Settings, config.Paths, error) {
	flags := getFlags(cmd)

	paths, err := config.ResolvePaths(flags.Directory)
	if err != nil {
		return config.Settings{}, paths, err
	}

	loaded, err := config.Load(paths)
	if err != nil {
		return config.Settings{}, paths, err
	}
	s := loaded.Settings

	changed := cmd.Flags().Changed
	if changed("env-file") {
		s.EnvFile = flags.EnvFile
	}
	if flags.NoOverride {
		s.Override = false
	}
	if changed("require") {
		s.Required = flags.Require
	}
	if changed("log-file") {
		s.LogFile = flags.LogFile
	}
	if changed("log-level") {
		s.LogLevel = flags.LogLevel
	}

	s.EnvFile = paths.Resolve(s.EnvFile)
	s.LogFile = paths.Resolve(s.LogFile)
	return s, paths, nil
}
