// Package argio centralizes the writers and color capability used by help
// rendering and validation diagnostics.
package argio

import (
	stdio "io"
	"os"
)

// IOManager holds the output and error writers for a parser instance.
// Help text goes to Out, validation diagnostics to Err.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether ANSI sequences should be emitted. Writers
// other than the process stdout never get color; beyond that the usual
// NO_COLOR / FORCE_COLOR / TERM conventions apply.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if m.out != stdio.Writer(os.Stdout) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Colorize wraps s with the given ANSI SGR code (e.g. "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }
