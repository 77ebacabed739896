// Package output provides context-aware output for aurx.
// Stdout carries primary data (package names, tables, search results).
// Stderr (via the log package) carries diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w      io.Writer
	styled io.Writer // w, downsampling ANSI colors to what it supports
	tty    bool
	cols   int // 0 when unknown
}

// New creates a Printer writing to w. If w is a terminal, its width is
// recorded for wrapping. Styled text is reduced to plain text when w is
// not a terminal or NO_COLOR is set.
func New(w io.Writer) *Printer {
	p := &Printer{w: w, styled: colorprofile.NewWriter(w, os.Environ())}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			p.tty = true
			if cols, _, err := term.GetSize(int(fd)); err == nil && cols > 0 {
				p.cols = cols
			}
		}
	}
	return p
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.styled, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.styled, a...)
}

// Writer returns the underlying writer. Output written to it bypasses
// color downsampling.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// IsTerminal reports whether output goes to a terminal.
func (p *Printer) IsTerminal() bool {
	return p.tty
}

// Width returns the terminal width in columns, or 0 when output is not a
// terminal or the size is unknown.
func (p *Printer) Width() int {
	return p.cols
}
