package autocommit

import (
	"context"
	"fmt"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"

	"github.com/zbiljic/autocommit/pkg/commit"
	"github.com/zbiljic/autocommit/pkg/gitdiff"
)

// Repository is the git working tree the commit is generated for.
type Repository interface {
	Committer
	IsInsideWorkTree() (bool, error)
	// StagedDiff returns the changes staged for commit.
	StagedDiff() (string, error)
	// FullDiff returns all changes against HEAD.
	FullDiff() (string, error)
}

// Completer asks the model for a commit and returns the raw function call
// arguments.
type Completer interface {
	RequestCommit(ctx context.Context, diff string, schema *jsonschema.Definition) (string, error)
}

// Status reports progress of the model request.
type Status interface {
	Start(label string)
	Stop(message string)
	Fail(message string)
}

// Runner wires the pipeline together.
type Runner struct {
	Repository Repository
	// NewCompleter is called once the diff has been read, so credential
	// errors never precede the repository check.
	NewCompleter func() (Completer, error)
	Status       Status
	Executor     *Executor
	Log          *zap.SugaredLogger
}

// Run executes one generation and returns the final commit state.
func (r *Runner) Run(ctx context.Context, opts Options) (State, error) {
	inside, err := r.Repository.IsInsideWorkTree()
	if err != nil {
		return StateProposed, fmt.Errorf("failed to check repository: %w", err)
	}
	if !inside {
		return StateProposed, ErrNotRepository
	}

	staged, err := r.Repository.StagedDiff()
	if err != nil {
		return StateProposed, fmt.Errorf("failed to get staged changes: %w", err)
	}
	if strutil.IsBlank(staged) {
		r.Log.Warn("There are no staged files to commit.\nTry running `git add` to stage some files.")
	}

	diff, err := r.Repository.FullDiff()
	if err != nil {
		return StateProposed, fmt.Errorf("failed to get diff: %w", err)
	}
	r.Log.Debugw("collected changes", "summary", gitdiff.Summary(gitdiff.Stat(diff)))

	raw, err := r.request(ctx, diff)
	if err != nil {
		return StateProposed, err
	}
	r.Log.Debugw("received commit arguments", "arguments", raw)

	c, err := commit.Parse(raw)
	if err != nil {
		return StateProposed, fmt.Errorf("failed to parse commit: %w", err)
	}

	return r.Executor.Execute(c, opts)
}

func (r *Runner) request(ctx context.Context, diff string) (string, error) {
	r.Status.Start("Analyzing changes")

	raw, err := func() (string, error) {
		completer, err := r.NewCompleter()
		if err != nil {
			return "", err
		}

		schema, err := commit.Schema()
		if err != nil {
			return "", err
		}

		r.Log.Debugw("requesting commit", "completer", completer, "diff_bytes", len(diff))

		raw, err := completer.RequestCommit(ctx, diff, schema)
		if err != nil {
			return "", fmt.Errorf("failed to generate commit: %w", err)
		}
		return raw, nil
	}()
	if err != nil {
		r.Status.Fail("Analysis failed")
		return "", err
	}

	r.Status.Stop("Analysis complete")
	return raw, nil
}
