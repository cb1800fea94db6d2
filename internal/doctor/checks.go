package doctor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grantcarthew/tally/internal/config"
	internalcue "github.com/grantcarthew/tally/internal/cue"
	"github.com/grantcarthew/tally/internal/env"
	"github.com/grantcarthew/tally/internal/startup"
	"github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
)

// Section names.
const (
	SectionRepository    = "Repository"
	SectionVersion       = "Version"
	SectionConfiguration = "Configuration"
	SectionEnvFile       = "Environment file"
	SectionRequired      = "Required"
	SectionLogging       = "Logging"
	SectionEnvironment   = "Environment"
)

// CheckIntro returns the intro section with repository info.
func CheckIntro() SectionResult {
	return SectionResult{
		Name:    SectionRepository,
		NoIcons: true,
		Results: []CheckResult{
			{Status: StatusInfo, Label: RepoURL},
			{Status: StatusInfo, Label: IssuesURL},
		},
	}
}

// CheckVersion returns the version section with build info.
func CheckVersion(info BuildInfo) SectionResult {
	return SectionResult{
		Name:    SectionVersion,
		NoIcons: true,
		Results: []CheckResult{
			{Status: StatusInfo, Label: "tally " + info.Version},
			{Status: StatusInfo, Label: "Build", Message: buildKind(info.Version)},
			{Status: StatusInfo, Label: "Commit", Message: info.Commit},
			{Status: StatusInfo, Label: "Built", Message: info.BuildDate},
			{Status: StatusInfo, Label: "Go", Message: info.GoVersion},
			{Status: StatusInfo, Label: "Platform", Message: info.Platform},
		},
	}
}

// buildKind classifies a version string as a release, pre-release or
// development build.
func buildKind(version string) string {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	switch {
	case !semver.IsValid(v):
		return "development"
	case semver.Prerelease(v) != "":
		return "pre-release"
	default:
		return "release"
	}
}

// CheckConfiguration validates the CUE settings directories.
func CheckConfiguration(paths config.Paths) SectionResult {
	section := SectionResult{Name: SectionConfiguration}
	validation := config.ValidateConfig(paths)

	section.Results = append(section.Results,
		checkConfigDir(paths.Global, "Global", paths.GlobalExists, validation.GlobalError)...)
	section.Results = append(section.Results,
		checkConfigDir(paths.Local, "Local", paths.LocalExists, validation.LocalError)...)

	if !paths.AnyExists() {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusInfo,
			Label:   "Settings",
			Message: "using defaults",
		})
		return section
	}

	if _, err := config.Load(paths); err != nil {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   "Merge",
			Message: "Failed",
			Fix:     "Fix CUE settings: " + internalcue.ErrorSummary(err),
		})
	} else {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusPass,
			Label:   "Validation",
			Message: "Valid",
		})
	}

	return section
}

// checkConfigDir reports on one settings directory.
func checkConfigDir(dir, scope string, exists bool, verr *internalcue.ValidationError) []CheckResult {
	scopeLabel := fmt.Sprintf("%s (%s)", scope, shortenPath(dir))

	if !exists {
		return []CheckResult{{Status: StatusInfo, Label: scopeLabel, Message: "Not found"}}
	}

	files, err := internalcue.CUEFiles(dir)
	if err != nil {
		return []CheckResult{{
			Status:  StatusFail,
			Label:   scopeLabel,
			Message: fmt.Sprintf("Cannot read: %v", err),
		}}
	}
	if len(files) == 0 {
		return []CheckResult{{Status: StatusInfo, Label: scopeLabel, Message: "No CUE files"}}
	}

	results := []CheckResult{{Status: StatusInfo, Label: scopeLabel}}
	for _, f := range files {
		name := filepath.Base(f)
		if verr != nil && (verr.Filename == "" || filepath.Base(verr.Filename) == name || verr.Filename == dir) {
			r := CheckResult{
				Status:  StatusFail,
				Label:   name,
				Message: verr.Message,
				Fix:     "Fix the CUE syntax or remove the unknown setting",
			}
			if verr.Context != "" {
				r.Details = strings.Split(strings.TrimRight(verr.Context, "\n"), "\n")
			}
			results = append(results, r)
			verr = nil
			continue
		}
		results = append(results, CheckResult{Status: StatusPass, Label: name})
	}
	return results
}

// CheckEnvFile parses the dotenv file at path. The returned map holds its
// entries and is nil when the file is missing or unreadable.
func CheckEnvFile(path string) (SectionResult, env.Map) {
	section := SectionResult{Name: SectionEnvFile}
	label := shortenPath(path)

	if path == "" {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusInfo,
			Label:   "Disabled",
			Message: "no env file configured",
		})
		return section, nil
	}

	values, err := env.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		section.Results = append(section.Results, CheckResult{
			Status:  StatusWarn,
			Label:   label,
			Message: "not found",
			Fix:     fmt.Sprintf("Create %s or export the required variables", path),
		})
		return section, nil
	case err != nil:
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   label,
			Message: "cannot parse",
			Fix:     err.Error(),
		})
		return section, nil
	}

	section.Summary = pluralize(len(values), "key")
	section.Results = append(section.Results, CheckResult{
		Status:  StatusPass,
		Label:   label,
		Message: "parsed",
		Details: values.Keys(),
	})
	return section, values
}

// CheckRequired runs the startup validator over keys against source.
// Values are never reported, only whether each key is defined.
func CheckRequired(keys []string, source env.Source, envFile string) SectionResult {
	section := SectionResult{Name: SectionRequired}

	if len(keys) == 0 {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusInfo,
			Label:   "None",
			Message: "no required values configured",
		})
		return section
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	validator := startup.NewValidator(source, quiet)

	set := 0
	for _, key := range keys {
		if _, err := validator.Require(key); err != nil {
			fix := fmt.Sprintf("export %s=...", key)
			if envFile != "" {
				fix = fmt.Sprintf("Add %s=... to %s or export it", key, shortenPath(envFile))
			}
			section.Results = append(section.Results, CheckResult{
				Status:  StatusFail,
				Label:   key,
				Message: "not set",
				Fix:     fix,
			})
			continue
		}
		set++
		section.Results = append(section.Results, CheckResult{
			Status:  StatusPass,
			Label:   key,
			Message: "set",
		})
	}

	section.Summary = fmt.Sprintf("%d of %d set", set, len(keys))
	return section
}

// CheckLogging reports whether the log file can be written.
func CheckLogging(logFile string) SectionResult {
	section := SectionResult{Name: SectionLogging}

	if logFile == "" {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusInfo,
			Label:   "File sink",
			Message: "disabled",
		})
		return section
	}

	dir := filepath.Dir(logFile)
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		section.Results = append(section.Results, CheckResult{
			Status:  StatusInfo,
			Label:   "Log directory",
			Message: shortenPath(dir) + " (created on first run)",
		})
	case err != nil:
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   "Log directory",
			Message: fmt.Sprintf("Cannot access: %v", err),
		})
	case !info.IsDir():
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   "Log directory",
			Message: "not a directory",
			Fix:     fmt.Sprintf("Remove %s or choose another --log-file", dir),
		})
	case !isWritable(dir):
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   "Log directory",
			Message: "not writable",
			Fix:     fmt.Sprintf("Check permissions on %s", dir),
		})
	default:
		section.Results = append(section.Results, CheckResult{
			Status:  StatusPass,
			Label:   "Log file",
			Message: shortenPath(logFile),
		})
	}

	return section
}

// CheckEnvironment validates the runtime environment.
func CheckEnvironment(paths config.Paths) SectionResult {
	section := SectionResult{Name: SectionEnvironment}

	if paths.GlobalExists {
		if isWritable(paths.Global) {
			section.Results = append(section.Results, CheckResult{
				Status:  StatusPass,
				Label:   "Config directory",
				Message: "writable",
			})
		} else {
			section.Results = append(section.Results, CheckResult{
				Status:  StatusWarn,
				Label:   "Config directory",
				Message: "not writable",
				Fix:     fmt.Sprintf("Check permissions on %s", paths.Global),
			})
		}
	}

	if _, err := os.Stat(paths.WorkDir); err != nil {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusFail,
			Label:   "Working directory",
			Message: fmt.Sprintf("Cannot access: %v", err),
		})
	} else {
		section.Results = append(section.Results, CheckResult{
			Status:  StatusPass,
			Label:   "Working directory",
			Message: shortenPath(paths.WorkDir),
		})
	}

	return section
}

// shortenPath replaces home directory with ~.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home || strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

// isWritable checks if a directory is writable.
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write-test-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
