// Package cli provides console table output helpers.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table wraps text/tabwriter with consistent column-aligned output. Headers
// and a dash divider are written lazily on the first Row() or Flush(), so an
// empty table produces no output.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	widths  []int
	written bool
}

// NewTable creates a table with the given column headers, writing to w.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// WithWidths caps each column at the given width (in runes, 0 = unlimited).
// Overlong cells are truncated on output.
func (t *Table) WithWidths(widths ...int) *Table {
	t.widths = widths
	return t
}

// Row writes a tab-separated row. On the first call, headers and divider are
// emitted before the row.
func (t *Table) Row(values ...string) {
	t.ensureHeaders()

	cells := make([]string, len(values))
	for i, v := range values {
		if i < len(t.widths) && t.widths[i] > 0 {
			cells[i] = Truncate(v, t.widths[i])
		} else {
			cells[i] = v
		}
	}

	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// Flush writes any buffered output. If no rows were written, nothing is
// printed.
func (t *Table) Flush() {
	if !t.written {
		return
	}
	t.w.Flush()
}

func (t *Table) ensureHeaders() {
	if t.written {
		return
	}
	t.written = true

	fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))

	dividers := make([]string, len(t.headers))
	for i, h := range t.headers {
		dividers[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(t.w, strings.Join(dividers, "\t"))
}

// Truncate caps a string at n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
