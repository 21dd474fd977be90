// Package gitrun executes git commands built by github.com/zbiljic/gitexec
// in the ways the commit flow needs: capturing output, feeding a message on
// standard input, or handing the terminal to an editor.
package gitrun

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// StdinFile is the --file value that makes git read the message from
// standard input.
const StdinFile = "-"

var (
	// ErrInvalidEncoding is returned when git output is not valid UTF-8.
	ErrInvalidEncoding = errors.New("git output is not valid UTF-8")

	errMissingDir = errors.New("missing command working directory")
)

// Text converts git output to a string, rejecting anything that is not
// valid UTF-8.
func Text(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", ErrInvalidEncoding
	}
	return string(out), nil
}

// Output returns standard output only; standard error is folded into the
// returned error.
func Output(cmd *exec.Cmd) ([]byte, error) {
	if cmd.Dir == "" {
		return nil, errMissingDir
	}

	withSysProcAttr(cmd)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, err
	}

	return out, nil
}

// WithInput feeds input to the process from a separate goroutine so a
// message larger than the pipe buffer cannot block the child while the
// parent waits for it. Standard output and error are returned combined.
func WithInput(cmd *exec.Cmd, input string) ([]byte, error) {
	if cmd.Dir == "" {
		return nil, errMissingDir
	}

	withSysProcAttr(cmd)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		_, err := io.WriteString(stdin, input)
		return err
	})

	waitErr := cmd.Wait()
	writeErr := g.Wait()

	if waitErr != nil {
		return out.Bytes(), waitErr
	}
	if writeErr != nil {
		return out.Bytes(), fmt.Errorf("failed to write to stdin: %w", writeErr)
	}

	return out.Bytes(), nil
}

// Attached runs the process on the standard streams of the current process,
// which an editor opened by git needs. It stays in the foreground session.
func Attached(cmd *exec.Cmd) error {
	if cmd.Dir == "" {
		return errMissingDir
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
