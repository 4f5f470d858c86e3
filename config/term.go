package config

import (
	"fmt"
	"io"
	"os"
)

// TerminalIO carries the process streams so commands and tests can swap
// them out. The changelog document itself goes to Stdout; diagnostics go
// to Stderr.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

// Printf writes one line to Stdout.
func (t TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg+"\n", args...)
}

// Errorf writes one line to Stderr.
func (t TerminalIO) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stderr, msg+"\n", args...)
}
