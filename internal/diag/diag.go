// Package diag renders parse errors for terminals.
package diag

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/mica/internal/syntax"
)

var (
	colorError = lipgloss.Color("#EF4444") // red
	colorPos   = lipgloss.Color("#94A3B8") // slate
	colorCaret = lipgloss.Color("#10B981") // emerald
	colorOK    = lipgloss.Color("#10B981")
)

// Printer writes diagnostics to w. Without color every style renders its
// input unchanged.
type Printer struct {
	w     io.Writer
	color bool

	pos   lipgloss.Style
	kind  lipgloss.Style
	caret lipgloss.Style
	ok    lipgloss.Style
	bold  lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: w, color: color}
	if color {
		r := lipgloss.NewRenderer(w)
		p.pos = r.NewStyle().Foreground(colorPos)
		p.kind = r.NewStyle().Foreground(colorError).Bold(true)
		p.caret = r.NewStyle().Foreground(colorCaret).Bold(true)
		p.ok = r.NewStyle().Foreground(colorOK)
		p.bold = r.NewStyle().Bold(true)
	} else {
		plain := lipgloss.NewStyle()
		p.pos, p.kind, p.caret, p.ok, p.bold = plain, plain, plain, plain, plain
	}
	return p
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Error reports err. If err carries a source position and src is the text
// it refers to, the offending line is quoted with a caret under the column.
func (p *Printer) Error(err error, src []byte) {
	var pe *syntax.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(p.w, "%s %s\n", p.render(p.kind, "error:"), err)
		return
	}

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.render(p.pos, pe.Pos.String()+":"),
		p.render(p.kind, pe.Kind.String()+":"),
		pe.Msg)

	if !pe.Pos.IsValid() {
		return
	}
	line, ok := sourceLine(src, pe.Pos.Line())
	if !ok {
		return
	}
	fmt.Fprintf(p.w, "    %s\n", line)
	fmt.Fprintf(p.w, "    %s%s\n", caretIndent(line, pe.Pos.Col()), p.render(p.caret, "^"))
}

// OK reports a file that parsed without errors.
func (p *Printer) OK(filename string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(p.ok, "ok"), filename)
}

// Summary reports the outcome of checking several files.
func (p *Printer) Summary(files, failed int) {
	word := "files"
	if files == 1 {
		word = "file"
	}
	msg := fmt.Sprintf("%d %s checked, %d failed", files, word, failed)
	if failed > 0 {
		fmt.Fprintln(p.w, p.render(p.kind, msg))
		return
	}
	fmt.Fprintln(p.w, p.render(p.bold, msg))
}

// sourceLine returns the 1-based line n of src without its line ending.
// It reports false when src has no line n. The empty remainder after a
// final newline is not a line.
func sourceLine(src []byte, n uint32) (string, bool) {
	if n == 0 {
		return "", false
	}
	for i := uint32(1); i < n; i++ {
		j := bytes.IndexByte(src, '\n')
		if j < 0 {
			return "", false
		}
		src = src[j+1:]
	}
	if len(src) == 0 {
		return "", false
	}
	if j := bytes.IndexByte(src, '\n'); j >= 0 {
		src = src[:j]
	}
	return strings.TrimSuffix(string(src), "\r"), true
}

// caretIndent returns the padding that puts a caret under column col of
// line. Tabs are kept so the caret lines up with the quoted source.
func caretIndent(line string, col uint32) string {
	var b strings.Builder
	i := uint32(1)
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
