package cli

import (
	"bytes"
	"os"
	"testing"
)

// isolate points global settings at an empty directory, unsets PASSWORD
// for the duration of the test and returns a fresh working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PASSWORD", "")
	if err := os.Unsetenv("PASSWORD"); err != nil {
		t.Fatalf("unsetting PASSWORD: %v", err)
	}
	return t.TempDir()
}

// execute runs a fresh command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
