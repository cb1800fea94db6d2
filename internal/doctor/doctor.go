// Package doctor reports on tally's configuration without failing fast.
//
// Checks return SectionResults; a Reporter prints them. Unlike the startup
// sequence, every check runs even after an earlier one fails.
package doctor

import "runtime"

// RepoURL and IssuesURL are shown in the report header section.
const (
	RepoURL   = "https://github.com/grantcarthew/tally"
	IssuesURL = RepoURL + "/issues"
)

// Status is the outcome of one check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
	StatusInfo
)

var statusText = [...]struct{ name, symbol string }{
	StatusPass: {"pass", "✓"},
	StatusWarn: {"warn", "⚠"},
	StatusFail: {"fail", "✗"},
	StatusInfo: {"info", "-"},
}

func (s Status) valid() bool { return s >= 0 && int(s) < len(statusText) }

func (s Status) String() string {
	if !s.valid() {
		return "unknown"
	}
	return statusText[s].name
}

// Symbol is the icon printed before a result.
func (s Status) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return statusText[s].symbol
}

// IsIssue reports whether s should fail the doctor run.
func (s Status) IsIssue() bool {
	return s == StatusFail || s == StatusWarn
}

// CheckResult is a single line in a section.
type CheckResult struct {
	Status  Status
	Label   string   // e.g. "PASSWORD", "settings.cue"
	Message string   // e.g. "set", "not found"
	Fix     string   // printed under failures and warnings
	Details []string // printed with --verbose
}

// SectionResult groups the results of one check.
type SectionResult struct {
	Name    string
	Results []CheckResult
	Summary string // e.g. "1 of 2 set"
	NoIcons bool   // info-only sections print "label: message"
}

// Report is the full doctor output.
type Report struct {
	Sections []SectionResult
}

// each calls fn for every result in report order.
func (r Report) each(fn func(CheckResult)) {
	for _, s := range r.Sections {
		for _, c := range s.Results {
			fn(c)
		}
	}
}

func (r Report) count(status Status) int {
	n := 0
	r.each(func(c CheckResult) {
		if c.Status == status {
			n++
		}
	})
	return n
}

// HasIssues reports whether any result is a failure or warning.
func (r Report) HasIssues() bool {
	return r.ErrorCount()+r.WarnCount() > 0
}

// Issues returns the failures and warnings in report order.
func (r Report) Issues() []CheckResult {
	var issues []CheckResult
	r.each(func(c CheckResult) {
		if c.Status.IsIssue() {
			issues = append(issues, c)
		}
	})
	return issues
}

// ErrorCount returns the number of failures.
func (r Report) ErrorCount() int { return r.count(StatusFail) }

// WarnCount returns the number of warnings.
func (r Report) WarnCount() int { return r.count(StatusWarn) }

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// DefaultBuildInfo fills the runtime fields and marks the rest unknown.
func DefaultBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   "dev",
		Commit:    "unknown",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
