package cue

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// cueErrors returns the CUE errors inside err, or nil when err carries none.
func cueErrors(err error) []cueerrors.Error {
	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return nil
	}
	return cueerrors.Errors(err)
}

// FormatError converts a CUE error into a *ValidationError carrying the
// position of the first underlying error. Non-CUE errors pass through.
func FormatError(err error) error {
	if err == nil {
		return nil
	}

	cueErrs := cueErrors(err)
	if len(cueErrs) == 0 {
		return err
	}

	first := cueErrs[0]

	// Msg() gives the message without the file:line prefix Error() adds.
	format, args := first.Msg()
	message := fmt.Sprintf(format, args...)
	if format == "" {
		message = first.Error()
	}

	ve := &ValidationError{Message: message}
	if pos := first.Position(); pos.IsValid() {
		ve.Filename = pos.Filename()
		ve.Line = pos.Line()
		ve.Column = pos.Column()
	}
	return ve
}

// ErrorSummary returns a one-line summary of a CUE error.
func ErrorSummary(err error) string {
	if err == nil {
		return ""
	}

	cueErrs := cueErrors(err)
	switch len(cueErrs) {
	case 0:
		return err.Error()
	case 1:
		return FormatError(cueErrs[0]).Error()
	default:
		first := FormatError(cueErrs[0]).Error()
		return first + " (and " + strconv.Itoa(len(cueErrs)-1) + " more errors)"
	}
}

// FormatErrorWithContext is FormatError plus a source snippet around the
// failing line when the file can be read.
func FormatErrorWithContext(err error) *ValidationError {
	if err == nil {
		return nil
	}

	ve, ok := FormatError(err).(*ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}

	if ve.Filename != "" && ve.Line > 0 {
		ve.Context = sourceContext(ve.Filename, ve.Line, ve.Column)
	}
	return ve
}

// sourceContext renders two lines either side of line, numbered, with a
// caret under column on the failing line.
func sourceContext(filename string, line, column int) string {
	file, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer func() { _ = file.Close() }()

	const contextLines = 2
	first := max(line-contextLines, 1)
	last := line + contextLines

	type numbered struct {
		num  int
		text string
	}
	var lines []numbered

	scanner := bufio.NewScanner(file)
	for n := 1; scanner.Scan() && n <= last; n++ {
		if n >= first {
			lines = append(lines, numbered{n, scanner.Text()})
		}
	}
	if len(lines) == 0 {
		return ""
	}

	width := len(strconv.Itoa(lines[len(lines)-1].num))

	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "    %*d | %s\n", width, l.num, l.text)
		if l.num == line && column > 0 {
			// 7 = len("    ") + len(" | ")
			sb.WriteString(strings.Repeat(" ", width+7+column-1) + "^\n")
		}
	}
	return sb.String()
}
