package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, "NAME", "STATUS")
	table.Row("gateway-1", "active")
	table.Row("ap-7", "disconnected")
	table.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, divider, 2 rows), got %v:\n%s", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "STATUS") {
		t.Errorf("incorrect header line %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("incorrect divider line %q", lines[1])
	}

	if !strings.HasPrefix(lines[2], "gateway-1") {
		t.Errorf("incorrect first row %q", lines[2])
	}
}

func TestEmptyTable(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, "NAME", "STATUS")
	table.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table produced output %q", buf.String())
	}
}

func TestTableWithWidths(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, "NAME", "MODEL").WithWidths(5, 0)
	table.Row("a-very-long-device-name", "ER-4")
	table.Flush()

	if !strings.Contains(buf.String(), "a-ver") || strings.Contains(buf.String(), "a-very") {
		t.Errorf("column not truncated to 5 runes:\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s        string
		n        int
		expected string
	}{
		{"short", 30, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"0123456789abcdef", 10, "0123456789"},
		{"šåmple-ünïcode", 6, "šåmple"},
	}

	for _, test := range tests {
		if v := Truncate(test.s, test.n); v != test.expected {
			t.Errorf("Truncate(%q, %v): expected %q, got %q", test.s, test.n, test.expected, v)
		}
	}
}
