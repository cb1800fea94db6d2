// Package config finds, loads and validates tally's CUE settings.
package config

import (
	"os"
	"path/filepath"
)

// AppName names the global and local settings directories.
const AppName = "tally"

// Scope selects which settings directories to read.
type Scope string

const (
	ScopeMerged Scope = "merged" // global then local
	ScopeGlobal Scope = "global" // $XDG_CONFIG_HOME/tally
	ScopeLocal  Scope = "local"  // <workdir>/.tally
)

func (s Scope) String() string { return string(s) }

// Paths locates the settings directories for one working directory.
type Paths struct {
	Global       string
	Local        string
	WorkDir      string // base for relative env_file and log_file
	GlobalExists bool
	LocalExists  bool
}

// ResolvePaths builds Paths for workingDir, or the current directory when
// it is empty.
func ResolvePaths(workingDir string) (Paths, error) {
	global, err := globalConfigDir()
	if err != nil {
		return Paths{}, err
	}

	if workingDir == "" {
		if workingDir, err = os.Getwd(); err != nil {
			return Paths{}, err
		}
	}

	local := filepath.Join(workingDir, "."+AppName)
	return Paths{
		Global:       global,
		Local:        local,
		WorkDir:      workingDir,
		GlobalExists: isDir(global),
		LocalExists:  isDir(local),
	}, nil
}

func globalConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ForScope lists the directories to load for scope, lowest priority first.
// Single scopes return only an existing directory. ScopeMerged always
// returns [global, local] so the loader can tell which one contributed.
func (p Paths) ForScope(scope Scope) []string {
	var dir string
	var exists bool
	switch scope {
	case ScopeGlobal:
		dir, exists = p.Global, p.GlobalExists
	case ScopeLocal:
		dir, exists = p.Local, p.LocalExists
	default:
		return []string{p.Global, p.Local}
	}
	if !exists {
		return nil
	}
	return []string{dir}
}

// AnyExists reports whether either settings directory exists.
func (p Paths) AnyExists() bool {
	return p.GlobalExists || p.LocalExists
}

// Resolve joins a relative path onto WorkDir. Empty and absolute paths are
// returned unchanged.
func (p Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.WorkDir == "" {
		return path
	}
	return filepath.Join(p.WorkDir, path)
}
