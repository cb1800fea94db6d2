package cli

import (
	"github.com/grantcarthew/tally/internal/config"
	"github.com/grantcarthew/tally/internal/doctor"
	"github.com/grantcarthew/tally/internal/env"
	"github.com/spf13/cobra"
)

// addDoctorCommand adds the doctor command to the parent command.
func addDoctorCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "doctor",
		GroupID: "utilities",
		Short:   "Diagnose tally configuration",
		Long: `Checks everything the startup sequence depends on and reports all
problems at once instead of stopping at the first.

Checks performed:
  - Version and build information
  - Settings file validation (CUE syntax and known keys)
  - Env file presence and syntax
  - Required values (names only, values are never printed)
  - Log file location

Exit codes:
  0 - All checks passed
  1 - Issues found`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}

	parent.AddCommand(cmd)
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, args []string) error {
	report, err := prepareDoctor(cmd)
	if err != nil {
		return err
	}

	flags := getFlags(cmd)
	reporter := doctor.NewReporter(cmd.OutOrStdout(), flags.Verbose, flags.Quiet)
	reporter.Print(report)

	if report.HasIssues() {
		return errDoctorIssuesFound
	}
	return nil
}

// errDoctorIssuesFound is returned when doctor finds issues.
// It implements SilentError so main.go skips printing it.
var errDoctorIssuesFound = &doctorError{}

type doctorError struct{}

func (e *doctorError) Error() string { return "issues found" }
func (e *doctorError) Silent() bool  { return true }

// prepareDoctor runs all checks and builds the report. Settings errors are
// reported as a failed section rather than aborting.
func prepareDoctor(cmd *cobra.Command) (doctor.Report, error) {
	var report doctor.Report

	report.Sections = append(report.Sections, doctor.CheckIntro())

	defaults := doctor.DefaultBuildInfo()
	report.Sections = append(report.Sections, doctor.CheckVersion(doctor.BuildInfo{
		Version:   cliVersion,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: defaults.GoVersion,
		Platform:  defaults.Platform,
	}))

	flags := getFlags(cmd)
	paths, err := config.ResolvePaths(flags.Directory)
	if err != nil {
		return report, err
	}
	report.Sections = append(report.Sections, doctor.CheckConfiguration(paths))

	settings, _, err := resolveSettings(cmd)
	if err != nil {
		// CheckConfiguration already reports the failure; carry on with
		// defaults so the remaining checks still run.
		settings = config.Defaults()
		settings.EnvFile = paths.Resolve(settings.EnvFile)
		settings.LogFile = paths.Resolve(settings.LogFile)
	}

	envSection, fileValues := doctor.CheckEnvFile(settings.EnvFile)
	report.Sections = append(report.Sections, envSection)

	// Mirror LoadFile precedence without touching the process environment.
	source := env.Chain{env.Process{}, fileValues}
	if settings.Override {
		source = env.Chain{fileValues, env.Process{}}
	}
	report.Sections = append(report.Sections, doctor.CheckRequired(settings.Required, source, settings.EnvFile))

	report.Sections = append(report.Sections, doctor.CheckLogging(settings.LogFile))
	report.Sections = append(report.Sections, doctor.CheckEnvironment(paths))

	return report, nil
}
