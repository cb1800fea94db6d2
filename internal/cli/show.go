package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/grantcarthew/tally/internal/table"
	"github.com/spf13/cobra"
)

// sampleTables maps show arguments to table builders, in display order.
var sampleTables = []struct {
	name  string
	title string
	build func() (*table.Table, error)
}{
	{"matrix", "Matrix", table.SampleMatrix},
	{"grades", "Gradebook", table.SampleGrades},
}

// addShowCommand adds the show command to the parent command.
func addShowCommand(parent *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:     "show [matrix|grades]...",
		GroupID: "commands",
		Short:   "Print the sample tables",
		Long: `Print the sample tables to stdout without validating the environment.

With no arguments both tables are printed. Use --format box for a bordered
layout.`,
		ValidArgs: []string{"matrix", "grades"},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := table.ParseFormat(format)
			if err != nil {
				return err
			}
			return runShow(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(table.FormatPlain), "Table format: plain or box")
	parent.AddCommand(cmd)
}

// runShow prints the named tables, or all of them when names is empty.
func runShow(cmd *cobra.Command, names []string, format table.Format) error {
	flags := getFlags(cmd)
	w := cmd.OutOrStdout()

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	for _, s := range sampleTables {
		if len(names) > 0 && !want[s.name] {
			continue
		}

		t, err := s.build()
		if err != nil {
			return fmt.Errorf("building %s table: %w", s.name, err)
		}

		if !flags.Quiet {
			printTitle(w, s.title, lipgloss.Width(t.String()))
		}
		if err := t.Render(w, format); err != nil {
			return err
		}
	}
	return nil
}

var (
	colorTitle = color.New(color.FgGreen)
	colorRule  = color.New(color.FgMagenta)
)

// printTitle writes a blank line, the title, and a rule at least width wide.
func printTitle(w io.Writer, title string, width int) {
	_, _ = fmt.Fprintln(w)
	_, _ = colorTitle.Fprintln(w, title)
	_, _ = colorRule.Fprintln(w, strings.Repeat("─", max(width, len(title))))
}
