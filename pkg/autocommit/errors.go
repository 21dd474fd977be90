package autocommit

import "errors"

var (
	// ErrNotRepository is returned when the working directory is not inside
	// a git working tree.
	ErrNotRepository = errors.New("The current directory must be a Git repository") //nolint:staticcheck

	// ErrAborted is returned when the user declines the proposed commit.
	ErrAborted = errors.New("commit aborted by user")
)
