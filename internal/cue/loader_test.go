package cue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuelang.org/go/cue"
)

func writeCUE(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func lookupString(t *testing.T, v cue.Value, path string) string {
	t.Helper()
	s, err := v.LookupPath(cue.ParsePath(path)).String()
	if err != nil {
		t.Fatalf("LookupPath(%s): %v", path, err)
	}
	return s
}

func TestLoader_Load(t *testing.T) {
	t.Run("no directories", func(t *testing.T) {
		_, err := NewLoader().Load(nil)
		if !errors.Is(err, ErrNoConfig) {
			t.Errorf("Load(nil) error = %v, want ErrNoConfig", err)
		}
	})

	t.Run("missing and empty directories are skipped", func(t *testing.T) {
		base := t.TempDir()
		empty := filepath.Join(base, "empty")
		if err := os.Mkdir(empty, 0o755); err != nil {
			t.Fatal(err)
		}
		_, err := NewLoader().Load([]string{filepath.Join(base, "missing"), empty})
		if !errors.Is(err, ErrNoConfig) {
			t.Errorf("Load() error = %v, want ErrNoConfig", err)
		}
	})

	t.Run("global only", func(t *testing.T) {
		base := t.TempDir()
		global := filepath.Join(base, "global")
		writeCUE(t, global, "settings.cue", `settings: { env_file: "global.env", log_level: "debug" }`)

		result, err := NewLoader().Load([]string{global, filepath.Join(base, "local")})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !result.GlobalLoaded || result.LocalLoaded {
			t.Errorf("loaded flags = (%v, %v), want (true, false)", result.GlobalLoaded, result.LocalLoaded)
		}
		if got := lookupString(t, result.Value, "settings.env_file"); got != "global.env" {
			t.Errorf("env_file = %q, want %q", got, "global.env")
		}
	})

	t.Run("local fields replace global fields", func(t *testing.T) {
		base := t.TempDir()
		global := filepath.Join(base, "global")
		local := filepath.Join(base, "local")
		writeCUE(t, global, "settings.cue", `settings: { env_file: "global.env", log_level: "debug" }`)
		writeCUE(t, local, "settings.cue", `settings: { env_file: "local.env" }`)

		result, err := NewLoader().Load([]string{global, local})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !result.GlobalLoaded || !result.LocalLoaded {
			t.Errorf("loaded flags = (%v, %v), want (true, true)", result.GlobalLoaded, result.LocalLoaded)
		}
		if got := lookupString(t, result.Value, "settings.env_file"); got != "local.env" {
			t.Errorf("env_file = %q, want %q", got, "local.env")
		}
		if got := lookupString(t, result.Value, "settings.log_level"); got != "debug" {
			t.Errorf("log_level = %q, want %q", got, "debug")
		}
	})

	t.Run("invalid CUE", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "bad")
		writeCUE(t, dir, "bad.cue", `settings: { env_file: "a" & 1 }`)

		if _, err := NewLoader().Load([]string{dir}); err == nil {
			t.Error("Load() should fail for conflicting values")
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.cue")
		if err := os.WriteFile(path, []byte(`a: 1`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewLoader().Load([]string{path})
		if err == nil || !strings.Contains(err.Error(), "not a directory") {
			t.Errorf("Load() error = %v, want not a directory", err)
		}
	})
}

func TestLoader_LoadSingle(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := NewLoader().LoadSingle(""); err == nil {
			t.Error("LoadSingle(\"\") should fail")
		}
	})

	t.Run("no CUE files", func(t *testing.T) {
		_, err := NewLoader().LoadSingle(t.TempDir())
		if !errors.Is(err, ErrNoCUEFiles) {
			t.Errorf("LoadSingle() error = %v, want ErrNoCUEFiles", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		dir := t.TempDir()
		writeCUE(t, dir, "a.cue", `settings: log_name: "demo"`)

		v, err := NewLoader().LoadSingle(dir)
		if err != nil {
			t.Fatalf("LoadSingle() error = %v", err)
		}
		if got := lookupString(t, v, "settings.log_name"); got != "demo" {
			t.Errorf("log_name = %q, want %q", got, "demo")
		}
	})
}

func TestCUEFiles(t *testing.T) {
	dir := t.TempDir()
	writeCUE(t, dir, "a.cue", `a: 1`)
	writeCUE(t, dir, "notes.txt", `not cue`)
	if err := os.Mkdir(filepath.Join(dir, "sub.cue"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := CUEFiles(dir)
	if err != nil {
		t.Fatalf("CUEFiles() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.cue" {
		t.Errorf("CUEFiles() = %v, want [a.cue]", files)
	}
}
