package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsSilentError returns true if the error should not be printed to stderr.
// Used by main.go to suppress output for errors that only set the exit code.
func IsSilentError(err error) bool {
	type silent interface {
		Silent() bool
	}
	if s, ok := err.(silent); ok {
		return s.Silent()
	}
	return false
}

// Build-time variables set via ldflags
var (
	cliVersion = "dev"
	commit     = "unknown"
	buildDate  = "unknown"
	repoURL    = "https://github.com/grantcarthew/tally"
)

var versionTemplate = fmt.Sprintf(`tally version %s
%s
%s/issues/new
`, cliVersion, repoURL, repoURL)

// NewRootCmd creates a new root command instance with all subcommands attached.
// Each call returns an isolated tree with its own Flags, so tests can run
// commands side by side.
func NewRootCmd() *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Validate startup configuration and log the sample tables",
		Long: `tally loads a .env file, checks that required values such as PASSWORD
are set, then builds and logs two sample tables.

Settings are read from CUE files in ~/.config/tally/ and ./.tally/;
flags override them. Records go to stderr and to log/app.log.`,
		Version: cliVersion,
		Args:    cobra.NoArgs,
		// Usage is still shown for flag/argument parsing errors.
		SilenceUsage: true,
		// main.go prints errors with colour.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.WithValue(cmd.Context(), flagsKey{}, flags)
			cmd.SetContext(ctx)

			if flags.NoColor {
				color.NoColor = true
			}
			return nil
		},
		RunE: runStart,
	}

	cmd.SetVersionTemplate(versionTemplate)

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.EnvFile, "env-file", ".env", "Dotenv file loaded before validation")
	pf.BoolVar(&flags.NoOverride, "no-override", false, "Keep existing environment variables over env file values")
	pf.StringSliceVar(&flags.Require, "require", []string{"PASSWORD"}, "Required environment variable (repeatable)")
	pf.StringVar(&flags.LogFile, "log-file", "log/app.log", "Log file path (empty disables the file sink)")
	pf.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVarP(&flags.Directory, "directory", "d", "", "Working directory for local settings and relative paths")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Only show errors")
	pf.BoolVar(&flags.Verbose, "verbose", false, "Detailed output")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	cmd.AddGroup(
		&cobra.Group{ID: "commands", Title: "Commands:"},
		&cobra.Group{ID: "utilities", Title: "Utilities:"},
	)

	addShowCommand(cmd)
	addCalcCommand(cmd)
	addDoctorCommand(cmd)
	addCompletionCommand(cmd)
	addHelpCommand(cmd)

	return cmd
}

// Execute runs the root command. This is the main entry point for the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// isTerminal reports whether v is an *os.File connected to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled reports whether output written to w may be coloured.
func colorEnabled(flags *Flags, w io.Writer) bool {
	return !flags.NoColor && !color.NoColor && isTerminal(w)
}
