// Package cue loads tally's CUE settings directories and turns CUE errors
// into positioned ValidationErrors.
package cue

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

var (
	// ErrNoCUEFiles is returned by LoadSingle for a directory without CUE files.
	ErrNoCUEFiles = errors.New("no CUE files found")
	// ErrNoConfig is returned by Load when no directory holds CUE files.
	ErrNoConfig = errors.New("no CUE configuration found")
)

// Loader builds CUE values from settings directories.
type Loader struct {
	ctx *cue.Context
}

// NewLoader returns a Loader with its own CUE context.
func NewLoader() *Loader {
	return &Loader{ctx: cuecontext.New()}
}

// LoadResult is the merged value and which directories contributed to it.
type LoadResult struct {
	Value        cue.Value
	GlobalLoaded bool // dirs[0]
	LocalLoaded  bool // dirs[1]
}

// Load reads dirs lowest priority first and merges them. Missing
// directories and directories without CUE files are skipped.
func (l *Loader) Load(dirs []string) (LoadResult, error) {
	var (
		result LoadResult
		values []cue.Value
	)

	for i, dir := range dirs {
		ok, err := usable(dir)
		if err != nil {
			return result, err
		}
		if !ok {
			continue
		}

		v, err := l.loadDir(dir)
		if err != nil {
			return result, fmt.Errorf("loading %s: %w", dir, err)
		}
		values = append(values, v)

		switch i {
		case 0:
			result.GlobalLoaded = true
		case 1:
			result.LocalLoaded = true
		}
	}

	if len(values) == 0 {
		return result, ErrNoConfig
	}

	merged, err := l.merge(values)
	if err != nil {
		return result, fmt.Errorf("merging settings: %w", err)
	}
	result.Value = merged
	return result, nil
}

// LoadSingle loads one directory without merging.
func (l *Loader) LoadSingle(dir string) (cue.Value, error) {
	if dir == "" {
		return cue.Value{}, errors.New("directory path is empty")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return cue.Value{}, fmt.Errorf("directory does not exist: %s", dir)
	}

	ok, err := usable(dir)
	if err != nil {
		return cue.Value{}, err
	}
	if !ok {
		return cue.Value{}, fmt.Errorf("%w in %s", ErrNoCUEFiles, dir)
	}
	return l.loadDir(dir)
}

// usable reports whether dir exists and holds CUE files. A path that
// exists but is not a directory is an error.
func usable(dir string) (bool, error) {
	if dir == "" {
		return false, nil
	}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("checking directory %s: %w", dir, err)
	case !info.IsDir():
		return false, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := CUEFiles(dir)
	if err != nil {
		return false, fmt.Errorf("listing CUE files in %s: %w", dir, err)
	}
	return len(files) > 0, nil
}

// loadDir builds every CUE file in dir, package clause or not.
func (l *Loader) loadDir(dir string) (cue.Value, error) {
	insts := load.Instances([]string{"."}, &load.Config{Dir: dir, Package: "*"})
	if len(insts) == 0 {
		return cue.Value{}, fmt.Errorf("no instances found in %s", dir)
	}
	if err := insts[0].Err; err != nil {
		return cue.Value{}, fmt.Errorf("loading instance: %w", err)
	}

	v := l.ctx.BuildInstance(insts[0])
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("building instance: %w", err)
	}
	return v, nil
}

// merge overlays values in order. Fields of top-level structs are merged
// one level deep so a later directory can change a single setting; any
// other top-level value is replaced whole.
func (l *Loader) merge(values []cue.Value) (cue.Value, error) {
	if len(values) == 1 {
		return values[0], nil
	}

	var fields overlay
	for _, v := range values {
		iter, err := v.Fields()
		if err != nil {
			return cue.Value{}, err
		}
		for iter.Next() {
			top, fv := iter.Selector(), iter.Value()
			if fv.Kind() != cue.StructKind {
				fields.replace(top, cue.MakePath(top), fv)
				continue
			}

			sub, err := fv.Fields()
			if err != nil {
				return cue.Value{}, fmt.Errorf("reading %s: %w", top, err)
			}
			fields.dropScalar(top)
			for sub.Next() {
				fields.set(cue.MakePath(top, sub.Selector()), sub.Value())
			}
		}
	}

	merged := l.ctx.CompileString("{}")
	for _, f := range fields {
		merged = merged.FillPath(f.path, f.value)
	}
	return merged, merged.Err()
}

type overlayField struct {
	path  cue.Path
	value cue.Value
}

// overlay is an ordered set of paths; setting an existing path replaces
// its value in place.
type overlay []overlayField

func (o *overlay) set(path cue.Path, v cue.Value) {
	key := path.String()
	for i := range *o {
		if (*o)[i].path.String() == key {
			(*o)[i].value = v
			return
		}
	}
	*o = append(*o, overlayField{path, v})
}

// replace sets a top-level scalar, dropping any fields nested under it.
func (o *overlay) replace(top cue.Selector, path cue.Path, v cue.Value) {
	prefix := top.String() + "."
	*o = slices.DeleteFunc(*o, func(f overlayField) bool {
		return strings.HasPrefix(f.path.String(), prefix)
	})
	o.set(path, v)
}

// dropScalar removes a top-level scalar about to become a struct.
func (o *overlay) dropScalar(top cue.Selector) {
	key := top.String()
	*o = slices.DeleteFunc(*o, func(f overlayField) bool {
		return f.path.String() == key
	})
}

// CUEFiles returns the .cue files directly inside dir.
func CUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".cue" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
