package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 59

var (
	colorHeader = color.New(color.FgGreen)
	colorRule   = color.New(color.FgMagenta)
	colorDim    = color.New(color.Faint)
	colorParen  = color.New(color.FgCyan)

	statusColors = map[Status]*color.Color{
		StatusPass: color.New(color.FgGreen),
		StatusWarn: color.New(color.FgYellow),
		StatusFail: color.New(color.FgRed),
	}

	sectionColors = map[string]*color.Color{
		SectionConfiguration: color.New(color.FgMagenta),
		SectionEnvFile:       color.New(color.FgCyan),
		SectionRequired:      color.New(color.FgBlue),
		SectionLogging:       color.New(color.FgHiYellow),
	}
)

func statusColor(s Status) *color.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return colorDim
}

// dim writes s faint, with parentheses highlighted.
func dim(w io.Writer, s string) {
	for s != "" {
		i := strings.IndexAny(s, "()")
		if i < 0 {
			_, _ = colorDim.Fprint(w, s)
			return
		}
		if i > 0 {
			_, _ = colorDim.Fprint(w, s[:i])
		}
		_, _ = colorParen.Fprint(w, s[i:i+1])
		s = s[i+1:]
	}
}

// Reporter prints a Report.
type Reporter struct {
	w       io.Writer
	verbose bool
	quiet   bool
}

// NewReporter returns a Reporter writing to w. Quiet prints issues only;
// verbose adds each result's details.
func NewReporter(w io.Writer, verbose, quiet bool) *Reporter {
	return &Reporter{w: w, verbose: verbose, quiet: quiet}
}

// Print writes the report.
func (r *Reporter) Print(report Report) {
	if r.quiet {
		for _, issue := range report.Issues() {
			r.issueLine(issue, true)
		}
		return
	}

	_, _ = fmt.Fprintln(r.w)
	_, _ = colorHeader.Fprintln(r.w, "tally doctor")
	_, _ = colorRule.Fprintln(r.w, strings.Repeat("═", ruleWidth))
	_, _ = fmt.Fprintln(r.w)

	for _, section := range report.Sections {
		r.section(section)
	}
	r.summary(report)
}

func (r *Reporter) section(s SectionResult) {
	if c, ok := sectionColors[s.Name]; ok {
		_, _ = c.Fprint(r.w, s.Name)
	} else {
		_, _ = fmt.Fprint(r.w, s.Name)
	}
	if s.Summary != "" {
		_, _ = fmt.Fprint(r.w, " ")
		dim(r.w, "("+s.Summary+")")
	}
	_, _ = fmt.Fprintln(r.w)

	for _, res := range s.Results {
		if s.NoIcons {
			r.infoLine(res)
		} else {
			r.resultLine(res)
		}
	}
	_, _ = fmt.Fprintln(r.w)
}

func (r *Reporter) infoLine(res CheckResult) {
	if res.Message == "" {
		_, _ = fmt.Fprintf(r.w, "  %s\n", res.Label)
		return
	}
	_, _ = fmt.Fprintf(r.w, "  %-10s ", res.Label+":")
	dim(r.w, res.Message)
	_, _ = fmt.Fprintln(r.w)
}

func (r *Reporter) resultLine(res CheckResult) {
	_, _ = fmt.Fprint(r.w, "  ")
	_, _ = statusColor(res.Status).Fprint(r.w, res.Status.Symbol())
	_, _ = fmt.Fprint(r.w, " ", res.Label)
	if res.Message != "" {
		_, _ = fmt.Fprint(r.w, " - ")
		dim(r.w, res.Message)
	}
	_, _ = fmt.Fprintln(r.w)

	if res.Fix != "" && res.Status.IsIssue() {
		_, _ = fmt.Fprint(r.w, "    ")
		dim(r.w, "Fix: "+res.Fix)
		_, _ = fmt.Fprintln(r.w)
	}
	if r.verbose {
		for _, d := range res.Details {
			_, _ = colorDim.Fprintf(r.w, "    %s\n", d)
		}
	}
}

func (r *Reporter) summary(report Report) {
	_, _ = colorHeader.Fprintln(r.w, "Summary")
	_, _ = colorRule.Fprintln(r.w, strings.Repeat("─", ruleWidth))

	errs, warns := report.ErrorCount(), report.WarnCount()
	if errs+warns == 0 {
		_, _ = statusColor(StatusPass).Fprintln(r.w, "  No issues found")
		_, _ = fmt.Fprintln(r.w)
		return
	}

	var parts []string
	if errs > 0 {
		parts = append(parts, statusColor(StatusFail).Sprint(pluralize(errs, "error")))
	}
	if warns > 0 {
		parts = append(parts, statusColor(StatusWarn).Sprint(pluralize(warns, "warning")))
	}
	_, _ = fmt.Fprintf(r.w, "  %s found\n\n", strings.Join(parts, ", "))

	_, _ = fmt.Fprintln(r.w, "Issues:")
	for _, issue := range report.Issues() {
		r.issueLine(issue, false)
	}
}

// issueLine prints one issue. Quiet lines carry an Error/Warning prefix
// instead of the status icon.
func (r *Reporter) issueLine(issue CheckResult, quiet bool) {
	c := statusColor(issue.Status)
	if quiet {
		prefix := "Warning"
		if issue.Status == StatusFail {
			prefix = "Error"
		}
		_, _ = c.Fprintf(r.w, "%s: ", prefix)
		if issue.Message == "" {
			_, _ = fmt.Fprintln(r.w, issue.Label)
		} else {
			_, _ = fmt.Fprintf(r.w, "%s: %s\n", issue.Label, issue.Message)
		}
		return
	}

	_, _ = fmt.Fprint(r.w, "  ")
	_, _ = c.Fprint(r.w, issue.Status.Symbol())
	if issue.Message == "" {
		_, _ = fmt.Fprintf(r.w, " %s\n", issue.Label)
		return
	}
	_, _ = fmt.Fprintf(r.w, " %s: ", issue.Label)
	dim(r.w, issue.Message)
	_, _ = fmt.Fprintln(r.w)
}
