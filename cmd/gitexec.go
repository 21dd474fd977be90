package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/zbiljic/gitexec"

	"github.com/zbiljic/autocommit/pkg/gitrun"
)

// gitRepository runs git in a working directory.
type gitRepository struct {
	workDir string
}

func (r *gitRepository) IsInsideWorkTree() (bool, error) {
	out, err := gitrun.Output(gitexec.RevParseCmd(&gitexec.RevParseOptions{
		CmdDir:           r.workDir,
		IsInsideWorkTree: true,
	}))
	if err != nil {
		// git ran and refused, so this is not a repository
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}

	return strings.TrimSpace(string(out)) == "true", nil
}

// hasHead reports whether HEAD resolves to a commit. It does not in a
// repository without commits.
func (r *gitRepository) hasHead() (bool, error) {
	_, err := gitrun.Output(gitexec.RevParseCmd(&gitexec.RevParseOptions{
		CmdDir: r.workDir,
		Verify: true,
		Quiet:  true,
		Arg:    []string{"HEAD"},
	}))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *gitRepository) StagedDiff() (string, error) {
	return r.diff(&gitexec.DiffOptions{
		CmdDir: r.workDir,
		Cached: true,
	})
}

// FullDiff returns the changes against HEAD. Before the first commit there
// is nothing to compare with, so the staged changes are used instead.
func (r *gitRepository) FullDiff() (string, error) {
	head, err := r.hasHead()
	if err != nil {
		return "", err
	}
	if !head {
		return r.StagedDiff()
	}

	return r.diff(&gitexec.DiffOptions{
		CmdDir: r.workDir,
		Commit: "HEAD",
	})
}

func (r *gitRepository) diff(opts *gitexec.DiffOptions) (string, error) {
	out, err := gitrun.Output(gitexec.DiffCmd(opts))
	if err != nil {
		return "", err
	}

	return gitrun.Text(out)
}

func (r *gitRepository) Commit(message string, review bool) ([]byte, error) {
	if review {
		return nil, r.commitWithEditor(message)
	}

	return gitrun.WithInput(gitexec.CommitCmd(&gitexec.CommitOptions{
		CmdDir: r.workDir,
		File:   gitrun.StdinFile,
	}), message)
}

// commitWithEditor hands the message to git through a file, leaving the
// terminal to the editor.
func (r *gitRepository) commitWithEditor(message string) error {
	f, err := os.CreateTemp("", "autocommit-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create message file: %w", err)
	}
	defer os.Remove(f.Name()) //nolint:errcheck

	if _, err := f.WriteString(message); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("failed to write message file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write message file: %w", err)
	}

	return gitrun.Attached(gitexec.CommitCmd(&gitexec.CommitOptions{
		CmdDir: r.workDir,
		File:   f.Name(),
		Edit:   true,
	}))
}
