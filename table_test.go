package mdtty

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsSeparatorLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"---", true},
		{"| --- | --- |", true},
		{":---:", true},
		{"| :--- | ---: |", true},
		{"\t|---|\t", true},
		{"", false},
		{"| a | b |", false},
		{"|||", false},
		{"- item", false},
		{"===", false},
	}
	for _, c := range cases {
		if got := isSeparatorLine(c.line); got != c.want {
			t.Errorf("isSeparatorLine(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestIsTableCandidate(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"| a | b |", true},
		{"a|b", true},
		{"|", true},
		{"plain", false},
		{"", false},
		{"   ", false},
	}
	for _, c := range cases {
		if got := isTableCandidate(c.line); got != c.want {
			t.Errorf("isTableCandidate(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestParseTableCells(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"| a | b |", []string{"a", "b"}},
		{"a|b", []string{"a", "b"}},
		{"|  spaced  |x|", []string{"spaced", "x"}},
		{"| a ", []string{"a"}},
		{"| a | | c |", []string{"a", "", "c"}},
	}
	for _, c := range cases {
		if got := parseTableCells(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseTableCells(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestRenderTableColumnWidths(t *testing.T) {
	r, sink := newTestRenderer()
	writeAll(t, r, "| A | BB |\n| --- | --- |\n| 1 | 22 |\n| longer | 2 |\n")
	flush(t, r)
	if len(sink.emitted) != 1 {
		t.Fatalf("expected one table emission, got %q", sink.emitted)
	}
	plain := stripANSI(sink.emitted[0])
	rows := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	if len(rows) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %q", rows)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			t.Errorf("row %d width %d, want %d: %q", i, len(row), width, row)
		}
		if !strings.HasPrefix(row, "| ") || !strings.HasSuffix(row, " |") {
			t.Errorf("row %d missing pipe frame: %q", i, row)
		}
	}
	if !strings.Contains(rows[0], "| A      |") {
		t.Errorf("first column not sized to widest row: %q", rows[0])
	}
	if !strings.Contains(rows[1], strings.Repeat("-", len("longer"))) {
		t.Errorf("separator not padded to column width: %q", rows[1])
	}
}

func TestRenderTableMinimumColumnWidth(t *testing.T) {
	r, sink := newTestRenderer()
	writeAll(t, r, "| A | B |\n|---|---|\n")
	flush(t, r)
	plain := stripANSI(sink.String())
	if !strings.Contains(plain, "| A   | B   |") {
		t.Fatalf("columns narrower than minimum width: %q", plain)
	}
}

func TestRenderTableRaggedRows(t *testing.T) {
	r, sink := newTestRenderer()
	writeAll(t, r, "| a | b | c |\n|---|---|---|\n| 1 |\n| 1 | 2 | 3 | 4 |\n")
	flush(t, r)
	plain := stripANSI(sink.String())
	rows := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			t.Errorf("ragged input broke alignment at row %d: %q", i, row)
		}
	}
	if strings.Contains(plain, "4") {
		t.Errorf("cells beyond the header column count must be dropped: %q", plain)
	}
}

func TestRenderTableStyledCells(t *testing.T) {
	r, sink := newTestRenderer()
	writeAll(t, r, "| Name |\n|---|\n| **bold** |\n")
	flush(t, r)
	out := sink.String()
	styles := DefaultTheme().Styles()
	if !strings.Contains(out, styles.TableHeader.Prefix) {
		t.Errorf("missing header style: %q", out)
	}
	if !strings.Contains(out, styles.Strong.Prefix+"bold"+ansiReset) {
		t.Errorf("inline styling not applied inside cell: %q", out)
	}
	if strings.Contains(stripANSI(out), "**") {
		t.Errorf("raw markers leaked into cell: %q", out)
	}
}
