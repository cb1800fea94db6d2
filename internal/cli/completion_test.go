package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"bash completion", "__tally_"}},
		{"zsh", []string{"#compdef tally", "_tally"}},
		{"fish", []string{"fish completion", "__tally_"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"completion", tt.shell})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("completion %s failed: %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("%s completion missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestCompletionHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"completion", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("completion --help failed: %v", err)
	}

	for _, shell := range []string{"bash", "zsh", "fish"} {
		if !strings.Contains(buf.String(), shell) {
			t.Errorf("expected %s in help output", shell)
		}
	}
}

func TestCompletionExtraArgs(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs([]string{"completion", shell, "extra"})

			if err := cmd.Execute(); err == nil {
				t.Error("expected error for extra arguments")
			}
		})
	}
}
