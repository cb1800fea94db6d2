package cli

import (
	"strings"
	"testing"
)

func TestShow(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all tables",
			args: []string{"show"},
			want: []string{"Matrix", "Gradebook", "0  1  2  3", "Martha"},
		},
		{
			name:    "matrix only",
			args:    []string{"show", "matrix"},
			want:    []string{"Matrix", "2  7  8  9"},
			notWant: []string{"Gradebook"},
		},
		{
			name:    "grades quiet",
			args:    []string{"-q", "show", "grades"},
			want:    []string{"Georgia     95       76"},
			notWant: []string{"Gradebook", "Matrix"},
		},
		{
			name: "box format",
			args: []string{"show", "--format", "box", "grades"},
			want: []string{"│", "Science", "Georgia"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("show failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout, want) {
					t.Errorf("output missing %q:\n%s", want, stdout)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(stdout, bad) {
					t.Errorf("output contains %q:\n%s", bad, stdout)
				}
			}
		})
	}
}

func TestShow_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown table", []string{"show", "students"}},
		{"unknown format", []string{"show", "--format", "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
