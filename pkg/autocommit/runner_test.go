package autocommit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zbiljic/autocommit/pkg/commit"
	"github.com/zbiljic/autocommit/pkg/llm"
)

type runnerFixture struct {
	repo      *fakeRepository
	completer *fakeCompleter
	confirmer *fakeConfirmer
	status    *fakeStatus
	out       *bytes.Buffer

	newCompleterCalls int
	newCompleterErr   error
}

func newRunnerFixture() *runnerFixture {
	return &runnerFixture{
		repo: &fakeRepository{
			inside: true,
			staged: "+print('hi')\n",
			full:   "+print('hi')\n",
		},
		completer: &fakeCompleter{
			arguments: `{"title":"Add greeting","description":"Print hi on startup."}`,
		},
		confirmer: &fakeConfirmer{approved: true},
		status:    &fakeStatus{},
		out:       &bytes.Buffer{},
	}
}

func (f *runnerFixture) runner() (*Runner, func() []string) {
	log, logs := newObservedLogger()

	runner := &Runner{
		Repository: f.repo,
		NewCompleter: func() (Completer, error) {
			f.newCompleterCalls++
			if f.newCompleterErr != nil {
				return nil, f.newCompleterErr
			}
			return f.completer, nil
		},
		Status: f.status,
		Executor: &Executor{
			Committer: f.repo,
			Confirmer: f.confirmer,
			Log:       log,
			Out:       f.out,
		},
		Log: log,
	}

	warnings := func() []string {
		var messages []string
		for _, entry := range logs.FilterLevelExact(zapcore.WarnLevel).All() {
			messages = append(messages, entry.Message)
		}
		return messages
	}

	return runner, warnings
}

func TestRunScenario(t *testing.T) {
	f := newRunnerFixture()
	runner, warnings := f.runner()

	state, err := runner.Run(context.Background(), Options{Force: true})
	require.NoError(t, err)

	assert.Equal(t, StateCommitted, state)
	assert.Empty(t, warnings())
	assert.Equal(t, []string{"+print('hi')\n"}, f.completer.diffs)
	assert.Equal(t, []commitCall{{message: "Add greeting\n\nPrint hi on startup."}}, f.repo.commits)
	assert.Equal(t, []string{"rev-parse", "diff --cached", "diff HEAD", "commit"}, f.repo.calls)
	assert.Equal(t, []string{"start: Analyzing changes", "stop: Analysis complete"}, f.status.events)
}

func TestRunNotRepository(t *testing.T) {
	f := newRunnerFixture()
	f.repo.inside = false
	runner, _ := f.runner()

	_, err := runner.Run(context.Background(), Options{Force: true})
	require.ErrorIs(t, err, ErrNotRepository)

	assert.Equal(t, []string{"rev-parse"}, f.repo.calls)
	assert.Zero(t, f.newCompleterCalls)
	assert.Empty(t, f.completer.diffs)
	assert.Empty(t, f.status.events)
}

func TestRunRepositoryCheckFailure(t *testing.T) {
	f := newRunnerFixture()
	f.repo.insideErr = errors.New(`exec: "git": executable file not found in $PATH`)
	runner, _ := f.runner()

	_, err := runner.Run(context.Background(), Options{})
	require.Error(t, err)

	assert.NotErrorIs(t, err, ErrNotRepository)
	assert.Zero(t, f.newCompleterCalls)
}

func TestRunMissingAPIKeyAfterRepositoryCheck(t *testing.T) {
	f := newRunnerFixture()
	f.newCompleterErr = llm.ErrMissingAPIKey
	runner, _ := f.runner()

	_, err := runner.Run(context.Background(), Options{Force: true})
	require.ErrorIs(t, err, llm.ErrMissingAPIKey)

	assert.Equal(t, []string{"rev-parse", "diff --cached", "diff HEAD"}, f.repo.calls)
	assert.Equal(t, []string{"start: Analyzing changes", "fail: Analysis failed"}, f.status.events)
}

func TestRunEmptyStagedDiffWarns(t *testing.T) {
	f := newRunnerFixture()
	f.repo.staged = " \n"
	f.repo.full = "+unstaged change\n"
	runner, warnings := f.runner()

	state, err := runner.Run(context.Background(), Options{Force: true})
	require.NoError(t, err)

	assert.Equal(t, StateCommitted, state)
	require.Len(t, warnings(), 1)
	assert.Contains(t, warnings()[0], "git add")
	assert.Equal(t, []string{"+unstaged change\n"}, f.completer.diffs)
}

func TestRunDiffFailure(t *testing.T) {
	f := newRunnerFixture()
	f.repo.diffErr = errors.New("fatal: bad revision 'HEAD'")
	runner, _ := f.runner()

	_, err := runner.Run(context.Background(), Options{Force: true})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "bad revision")
	assert.Zero(t, f.newCompleterCalls)
}

func TestRunDryRun(t *testing.T) {
	f := newRunnerFixture()
	runner, _ := f.runner()

	state, err := runner.Run(context.Background(), Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, StateProposed, state)
	assert.Equal(t, "Add greeting\n\nPrint hi on startup.\n", f.out.String())
	assert.Empty(t, f.repo.commits)
	assert.Empty(t, f.confirmer.questions)
}

func TestRunResponseErrors(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		err       error
		wantErr   error
	}{
		{
			name:    "no function call",
			err:     llm.ErrNoFunctionCall,
			wantErr: llm.ErrNoFunctionCall,
		},
		{
			name:      "malformed arguments",
			arguments: `{"title": "Add`,
			wantErr:   commit.ErrMalformedArguments,
		},
		{
			name:      "missing description",
			arguments: `{"title":"Add greeting"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRunnerFixture()
			f.completer.arguments = tt.arguments
			f.completer.err = tt.err
			runner, _ := f.runner()

			_, err := runner.Run(context.Background(), Options{Force: true})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var fieldErr *commit.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "description", fieldErr.Field)
			}

			assert.Empty(t, f.repo.commits)
			assert.Empty(t, f.confirmer.questions)
		})
	}
}

func TestRunDeclined(t *testing.T) {
	f := newRunnerFixture()
	f.confirmer.approved = false
	runner, _ := f.runner()

	state, err := runner.Run(context.Background(), Options{})
	require.ErrorIs(t, err, ErrAborted)

	assert.Equal(t, StateAborted, state)
	assert.Empty(t, f.repo.commits)
}
