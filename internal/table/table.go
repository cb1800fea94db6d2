// Package table builds small in-memory tables and renders them as text.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a rectangular grid of string cells with named columns.
// Rows are indexed from 0.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates a table, checking that every row has one cell per column.
func New(columns []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// Range returns the integers in [start, stop).
func Range(start, stop int) []int {
	if stop <= start {
		return nil
	}
	out := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, i)
	}
	return out
}

// Reshape arranges values row by row into a rows x cols grid.
func Reshape[T any](values []T, rows, cols int) ([][]T, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid shape (%d, %d)", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("cannot reshape %d values into shape (%d, %d)", len(values), rows, cols)
	}
	grid := make([][]T, rows)
	for r := range grid {
		grid[r] = values[r*cols : (r+1)*cols]
	}
	return grid, nil
}

// FromMatrix builds a table from a grid, naming columns 0, 1, 2...
func FromMatrix[T any](grid [][]T) (*Table, error) {
	var width int
	if len(grid) > 0 {
		width = len(grid[0])
	}

	columns := make([]string, width)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}

	rows := make([][]string, len(grid))
	for r, values := range grid {
		rows[r] = make([]string, len(values))
		for c, v := range values {
			rows[r][c] = fmt.Sprint(v)
		}
	}
	return New(columns, rows)
}

// FromColumns builds a table from column-oriented data. order fixes the
// column order and must name every key in columns exactly once.
func FromColumns(order []string, columns map[string][]any) (*Table, error) {
	if len(order) != len(columns) {
		return nil, fmt.Errorf("column order names %d columns, data has %d", len(order), len(columns))
	}

	height := -1
	for _, name := range order {
		values, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		if height >= 0 && len(values) != height {
			return nil, fmt.Errorf("column %q has %d values, want %d", name, len(values), height)
		}
		height = len(values)
	}
	if height < 0 {
		height = 0
	}

	rows := make([][]string, height)
	for r := range rows {
		rows[r] = make([]string, len(order))
		for c, name := range order {
			rows[r][c] = fmt.Sprint(columns[name][r])
		}
	}
	return New(order, rows)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the cells of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	for c, col := range t.Columns {
		if col != name {
			continue
		}
		out := make([]string, len(t.Rows))
		for r, row := range t.Rows {
			out[r] = row[c]
		}
		return out, true
	}
	return nil, false
}

// String returns the plain rendering without a trailing newline.
func (t *Table) String() string {
	var sb strings.Builder
	t.renderPlain(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Render writes the table to w in the given format.
func (t *Table) Render(w io.Writer, format Format) error {
	switch format {
	case FormatPlain, "":
		var sb strings.Builder
		t.renderPlain(&sb)
		_, err := io.WriteString(w, sb.String())
		return err
	case FormatBox:
		_, err := fmt.Fprintln(w, t.renderBox())
		return err
	default:
		return fmt.Errorf("unknown table format %q", format)
	}
}

// renderPlain lays out columns right-aligned, two spaces apart, with the
// row index in the first column.
func (t *Table) renderPlain(sb *strings.Builder) {
	indexWidth := 0
	for r := range t.Rows {
		indexWidth = max(indexWidth, lipgloss.Width(strconv.Itoa(r)))
	}

	widths := make([]int, len(t.Columns))
	for c, name := range t.Columns {
		widths[c] = lipgloss.Width(name)
		for _, row := range t.Rows {
			widths[c] = max(widths[c], lipgloss.Width(row[c]))
		}
	}

	sb.WriteString(strings.Repeat(" ", indexWidth))
	for c, name := range t.Columns {
		sb.WriteString("  ")
		sb.WriteString(padLeft(name, widths[c]))
	}
	sb.WriteString("\n")

	for r, row := range t.Rows {
		sb.WriteString(padRight(strconv.Itoa(r), indexWidth))
		for c, cell := range row {
			sb.WriteString("  ")
			sb.WriteString(padLeft(cell, widths[c]))
		}
		sb.WriteString("\n")
	}
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
