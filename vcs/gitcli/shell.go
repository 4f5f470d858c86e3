package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jeffrom/chlog/textutil"
)

var CommandContext = exec.CommandContext

// ShellError is returned when git exits with a status outside the accepted
// set. It carries both output streams for diagnostics.
type ShellError struct {
	Args   []string
	Code   int
	Stdout string
	Stderr string
}

func (e *ShellError) Error() string {
	msg := fmt.Sprintf("gitcli: git %s exited with status %d", ArgsString(e.Args), e.Code)
	var streams []string
	if e.Stdout != "" {
		streams = append(streams, "stdout:\n"+textutil.Indent(strings.TrimSuffix(e.Stdout, "\n"), "| "))
	}
	if e.Stderr != "" {
		streams = append(streams, "stderr:\n"+textutil.Indent(strings.TrimSuffix(e.Stderr, "\n"), "| "))
	}
	if len(streams) == 0 {
		return msg
	}
	return msg + "\n" + textutil.Indent(strings.Join(streams, "\n"), "  ")
}

// call runs git with args and returns its stdout. Exit statuses outside
// okCodes (just 0 when empty) produce a ShellError; git never being started
// at all is a plain error.
func (g *Git) call(ctx context.Context, args []string, okCodes ...int) ([]byte, error) {
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	g.cfg.Debugf("+ git %s", ArgsString(args))
	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return nil, fmt.Errorf("exec: git %s failed: %w", ArgsString(args), err)
		}
		code = ee.ExitCode()
	}

	if len(okCodes) == 0 {
		okCodes = []int{0}
	}
	for _, ok := range okCodes {
		if code == ok {
			return ob.Bytes(), nil
		}
	}
	return nil, &ShellError{
		Args:   args,
		Code:   code,
		Stdout: ob.String(),
		Stderr: eb.String(),
	}
}

// callString is call with the result stripped of surrounding whitespace.
func (g *Git) callString(ctx context.Context, args []string, okCodes ...int) (string, error) {
	b, err := g.call(ctx, args, okCodes...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ArgsString returns a string suitable for copy/paste into the terminal.
func ArgsString(args []string) string {
	b := &bytes.Buffer{}

	for i, arg := range args {
		if strings.Contains(arg, " ") {
			b.WriteString(`"`)
			b.WriteString(arg)
			b.WriteString(`"`)
		} else {
			b.WriteString(arg)
		}

		if i < len(args)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
