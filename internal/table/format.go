package table

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// Format selects a rendering style.
type Format string

const (
	FormatPlain Format = "plain"
	FormatBox   Format = "box"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatPlain, FormatBox}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown table format %q (want plain or box)", s)
}

var (
	boxHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	boxCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	boxIndexStyle  = lipgloss.NewStyle().Padding(0, 1).Faint(true)
)

// renderBox draws the table with a border using lipgloss.
func (t *Table) renderBox() string {
	headers := append([]string{""}, t.Columns...)

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		rows[r] = append([]string{strconv.Itoa(r)}, row...)
	}

	return ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return boxHeaderStyle
			case col == 0:
				return boxIndexStyle
			default:
				return boxCellStyle
			}
		}).
		String()
}
