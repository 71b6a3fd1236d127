// Package ui - Terminal user interface
// Colored CLI output, tables and the interactive questionnaire.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int

	bold   *color.Color
	dim    *color.Color
	red    *color.Color
	green  *color.Color
	yellow *color.Color
	blue   *color.Color
	cyan   *color.Color
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	w := &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
		bold:      color.New(color.Bold),
		dim:       color.New(color.Faint),
		red:       color.New(color.FgRed),
		green:     color.New(color.FgGreen),
		yellow:    color.New(color.FgYellow),
		blue:      color.New(color.FgBlue),
		cyan:      color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{w.bold, w.dim, w.red, w.green, w.yellow, w.blue, w.cyan} {
			c.DisableColor()
		}
	}
	return w
}

// Out returns the underlying writer
func (w *Writer) Out() io.Writer {
	return w.out
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Print writes a line
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Bold returns text in bold
func (w *Writer) Bold(text string) string {
	return w.bold.Sprint(text)
}

// Dim returns text dimmed
func (w *Writer) Dim(text string) string {
	return w.dim.Sprint(text)
}

// Score returns a score colored by how well it fits
func (w *Writer) Score(score int, text string) string {
	switch {
	case score >= 85:
		return w.green.Sprint(text)
	case score >= 60:
		return w.yellow.Sprint(text)
	default:
		return w.red.Sprint(text)
	}
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.cyan.Sprint("━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.bold.Sprint("▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.green.Sprint("✓ "), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.yellow.Sprint("⚠ "), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.red.Sprint("✗ "), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.blue.Sprint("ℹ "), msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.dim.Sprint("  "+msg))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) line(cells []string) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(" │ ")
		}
		sb.WriteString(cell)
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	return sb.String()
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.bold.Sprint(t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}
