package cue

import (
	"fmt"

	"cuelang.org/go/cue"
)

// ValidationError is a CUE error reduced to its first message and source
// position.
type ValidationError struct {
	Path     string
	Message  string
	Line     int
	Column   int
	Filename string
	Context  string // numbered source lines around Line, when readable
}

func (e *ValidationError) Error() string {
	switch {
	case e.Filename != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
	case e.Filename != "":
		return e.Filename + ": " + e.Message
	case e.Path != "":
		return e.Path + ": " + e.Message
	default:
		return e.Message
	}
}

// Validate reports structural errors in value. With concrete set it also
// rejects values that are still constraints, such as a bare "string".
func Validate(value cue.Value, concrete bool) error {
	opts := []cue.Option{}
	if concrete {
		opts = append(opts, cue.Concrete(true))
	}
	if err := value.Err(); err != nil {
		return FormatError(err)
	}
	if err := value.Validate(opts...); err != nil {
		return FormatError(err)
	}
	return nil
}
