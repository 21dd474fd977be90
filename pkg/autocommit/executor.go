package autocommit

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/zbiljic/autocommit/pkg/commit"
)

// State is the position of a proposed commit in the confirmation flow.
type State int

const (
	StateProposed State = iota
	StateConfirmed
	StateCommitted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateProposed:
		return "proposed"
	case StateConfirmed:
		return "confirmed"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Committer creates the commit. With review the message is opened in an
// editor before git records it.
type Committer interface {
	Commit(message string, review bool) ([]byte, error)
}

// Confirmer asks whether the proposed commit should be created. It may also
// ask for the message to be reviewed in an editor.
type Confirmer interface {
	Confirm(question string) (approved, review bool, err error)
}

// Printer shows a titled block of text to the user.
type Printer interface {
	Message(title, body string)
}

// Options select how a proposed commit is handled.
type Options struct {
	// DryRun prints the message and stops.
	DryRun bool
	// Force skips the confirmation.
	Force bool
	// Review opens the message in an editor while committing.
	Review bool
}

// Executor takes a proposed commit through confirmation to git.
type Executor struct {
	Committer Committer
	Confirmer Confirmer
	// Printer defaults to the logger when nil.
	Printer Printer
	Log     *zap.SugaredLogger
	// Out receives the message in dry run mode.
	Out io.Writer
}

const confirmQuestion = "Do you want to continue?"

// Execute runs the state machine for c and returns the final state. A
// declined commit ends in StateAborted with ErrAborted.
func (e *Executor) Execute(c commit.Commit, opts Options) (State, error) {
	message := c.String()
	state := StateProposed

	if opts.DryRun {
		_, err := fmt.Fprintln(e.Out, message)
		return state, err
	}

	e.printer().Message("Proposed Commit", message)

	review := opts.Review

	if opts.Force {
		state = e.transition(state, StateConfirmed)
	} else {
		approved, reviewRequested, err := e.Confirmer.Confirm(confirmQuestion)
		if err != nil {
			return state, fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !approved {
			e.Log.Error("Commit aborted by user.")
			return e.transition(state, StateAborted), ErrAborted
		}
		review = review || reviewRequested
		state = e.transition(state, StateConfirmed)
		e.Log.Info("Committing message...")
	}

	out, err := e.Committer.Commit(message, review)
	if err != nil {
		if output := strings.TrimSpace(string(out)); output != "" {
			return state, fmt.Errorf("failed to create commit: %w\n%s", err, output)
		}
		return state, fmt.Errorf("failed to create commit: %w", err)
	}
	state = e.transition(state, StateCommitted)

	if output := strings.TrimSpace(string(out)); output != "" {
		e.printer().Message("Commit", output)
	}

	return state, nil
}

func (e *Executor) transition(from, to State) State {
	e.Log.Debugw("commit state changed", "from", from, "to", to)
	return to
}

func (e *Executor) printer() Printer {
	if e.Printer != nil {
		return e.Printer
	}
	return logPrinter{log: e.Log}
}

type logPrinter struct {
	log *zap.SugaredLogger
}

func (p logPrinter) Message(title, body string) {
	const rule = "------------------------------"
	p.log.Infof("%s:\n%s\n%s\n%s", title, rule, body, rule)
}
