package table

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		start, stop int
		want        []int
	}{
		{1, 10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{0, 1, []int{0}},
		{3, 3, nil},
		{5, 2, nil},
	}

	for _, tt := range tests {
		if got := Range(tt.start, tt.stop); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Range(%d, %d) = %v, want %v", tt.start, tt.stop, got, tt.want)
		}
	}
}

func TestReshape(t *testing.T) {
	got, err := Reshape([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("Reshape() error = %v", err)
	}
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reshape() = %v, want %v", got, want)
	}

	if _, err := Reshape([]int{1, 2, 3}, 2, 2); err == nil {
		t.Error("Reshape() with wrong length should fail")
	}
	if _, err := Reshape([]int{}, -1, 0); err == nil {
		t.Error("Reshape() with negative shape should fail")
	}
}

func TestNew_RowWidthMismatch(t *testing.T) {
	if _, err := New([]string{"a", "b"}, [][]string{{"1"}}); err == nil {
		t.Error("New() should reject a short row")
	}
}

func TestFromColumns_Errors(t *testing.T) {
	tests := []struct {
		name    string
		order   []string
		columns map[string][]any
	}{
		{
			name:    "uneven lengths",
			order:   []string{"a", "b"},
			columns: map[string][]any{"a": {1, 2}, "b": {1}},
		},
		{
			name:    "unknown column",
			order:   []string{"a", "c"},
			columns: map[string][]any{"a": {1}, "b": {1}},
		},
		{
			name:    "order count mismatch",
			order:   []string{"a"},
			columns: map[string][]any{"a": {1}, "b": {1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromColumns(tt.order, tt.columns); err == nil {
				t.Error("FromColumns() should fail")
			}
		})
	}
}

func TestFromColumns_Empty(t *testing.T) {
	tbl, err := FromColumns(nil, nil)
	if err != nil {
		t.Fatalf("FromColumns(nil, nil) error = %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}

func TestSampleMatrix(t *testing.T) {
	tbl, err := SampleMatrix()
	if err != nil {
		t.Fatalf("SampleMatrix() error = %v", err)
	}

	want := "   0  1  2\n" +
		"0  1  2  3\n" +
		"1  4  5  6\n" +
		"2  7  8  9"
	if got := tbl.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestSampleGrades(t *testing.T) {
	tbl, err := SampleGrades()
	if err != nil {
		t.Fatalf("SampleGrades() error = %v", err)
	}

	if tbl.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tbl.Len())
	}
	names, ok := tbl.Column("Name")
	if !ok || !reflect.DeepEqual(names, []string{"Martha", "Tim", "Rob", "Georgia"}) {
		t.Errorf("Column(Name) = %v, %v", names, ok)
	}
	if _, ok := tbl.Column("History"); ok {
		t.Error("Column(History) should not exist")
	}

	want := "      Name  Maths  Science\n" +
		"0   Martha     87       83\n" +
		"1      Tim     91       99\n" +
		"2      Rob     97       84\n" +
		"3  Georgia     95       76"
	if got := tbl.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTable_Render(t *testing.T) {
	tbl, err := SampleGrades()
	if err != nil {
		t.Fatalf("SampleGrades() error = %v", err)
	}

	t.Run("plain ends with newline", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Render(&buf, FormatPlain); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if buf.String() != tbl.String()+"\n" {
			t.Errorf("Render(plain) = %q", buf.String())
		}
	})

	t.Run("box contains cells", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Render(&buf, FormatBox); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Name", "Georgia", "99", "│"} {
			if !strings.Contains(out, want) {
				t.Errorf("Render(box) missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := tbl.Render(&bytes.Buffer{}, Format("html")); err == nil {
			t.Error("Render() with unknown format should fail")
		}
	})
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"plain", "box"} {
		if f, err := ParseFormat(name); err != nil || string(f) != name {
			t.Errorf("ParseFormat(%q) = (%q, %v)", name, f, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv) should fail")
	}
}
