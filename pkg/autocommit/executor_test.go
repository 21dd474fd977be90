package autocommit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbiljic/autocommit/pkg/commit"
)

var testCommit = commit.Commit{
	Title:       "Add greeting",
	Description: "Print a greeting on startup.",
}

func newTestExecutor(repo *fakeRepository, confirmer *fakeConfirmer) (*Executor, *bytes.Buffer) {
	log, _ := newObservedLogger()
	out := &bytes.Buffer{}
	return &Executor{
		Committer: repo,
		Confirmer: confirmer,
		Log:       log,
		Out:       out,
	}, out
}

func TestExecuteDryRun(t *testing.T) {
	repo := &fakeRepository{}
	confirmer := &fakeConfirmer{approved: true}
	executor, out := newTestExecutor(repo, confirmer)

	state, err := executor.Execute(testCommit, Options{DryRun: true, Force: true, Review: true})
	require.NoError(t, err)

	assert.Equal(t, StateProposed, state)
	assert.Equal(t, "Add greeting\n\nPrint a greeting on startup.\n", out.String())
	assert.Empty(t, repo.commits)
	assert.Empty(t, confirmer.questions)
}

func TestExecuteForce(t *testing.T) {
	repo := &fakeRepository{output: []byte("[main abc123] Add greeting\n")}
	confirmer := &fakeConfirmer{}
	executor, out := newTestExecutor(repo, confirmer)

	state, err := executor.Execute(testCommit, Options{Force: true})
	require.NoError(t, err)

	assert.Equal(t, StateCommitted, state)
	assert.Empty(t, confirmer.questions)
	assert.Empty(t, out.String())
	require.Len(t, repo.commits, 1)
	assert.Equal(t, commitCall{message: "Add greeting\n\nPrint a greeting on startup."}, repo.commits[0])
}

func TestExecuteConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		confirmer *fakeConfirmer
		wantState State
		wantErr   error
		wantCalls []commitCall
	}{
		{
			name:      "approved",
			confirmer: &fakeConfirmer{approved: true},
			wantState: StateCommitted,
			wantCalls: []commitCall{{message: testCommit.String()}},
		},
		{
			name:      "declined",
			confirmer: &fakeConfirmer{approved: false},
			wantState: StateAborted,
			wantErr:   ErrAborted,
		},
		{
			name:      "review requested at prompt",
			confirmer: &fakeConfirmer{approved: true, review: true},
			wantState: StateCommitted,
			wantCalls: []commitCall{{message: testCommit.String(), review: true}},
		},
		{
			name:      "review flag",
			opts:      Options{Review: true},
			confirmer: &fakeConfirmer{approved: true},
			wantState: StateCommitted,
			wantCalls: []commitCall{{message: testCommit.String(), review: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			executor, _ := newTestExecutor(repo, tt.confirmer)

			state, err := executor.Execute(testCommit, tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, []string{confirmQuestion}, tt.confirmer.questions)
			assert.Equal(t, tt.wantCalls, repo.commits)
		})
	}
}

func TestExecuteDeclineLogsAbort(t *testing.T) {
	log, logs := newObservedLogger()
	repo := &fakeRepository{}
	executor := &Executor{
		Committer: repo,
		Confirmer: &fakeConfirmer{},
		Log:       log,
	}

	_, err := executor.Execute(testCommit, Options{})
	require.ErrorIs(t, err, ErrAborted)

	assert.Equal(t, 1, logs.FilterMessage("Commit aborted by user.").Len())
	assert.Empty(t, repo.calls)
}

func TestExecuteConfirmerError(t *testing.T) {
	repo := &fakeRepository{}
	executor, _ := newTestExecutor(repo, &fakeConfirmer{err: errors.New("unexpected end of input")})

	state, err := executor.Execute(testCommit, Options{})
	require.Error(t, err)

	assert.Equal(t, StateProposed, state)
	assert.Empty(t, repo.commits)
}

func TestExecuteCommitFailure(t *testing.T) {
	repo := &fakeRepository{
		output:    []byte("nothing to commit, working tree clean\n"),
		commitErr: errors.New("exit status 1"),
	}
	executor, _ := newTestExecutor(repo, &fakeConfirmer{})

	state, err := executor.Execute(testCommit, Options{Force: true})
	require.Error(t, err)

	assert.Equal(t, StateConfirmed, state)
	assert.Contains(t, err.Error(), "nothing to commit, working tree clean")
	assert.Len(t, repo.commits, 1)
}

func TestExecuteShowsProposedCommit(t *testing.T) {
	log, logs := newObservedLogger()
	executor := &Executor{
		Committer: &fakeRepository{output: []byte("[main abc123] Add greeting")},
		Confirmer: &fakeConfirmer{approved: true},
		Log:       log,
	}

	_, err := executor.Execute(testCommit, Options{})
	require.NoError(t, err)

	var proposed, committed bool
	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, "Proposed Commit:") &&
			strings.Contains(entry.Message, testCommit.String()) {
			proposed = true
		}
		if strings.Contains(entry.Message, "[main abc123] Add greeting") {
			committed = true
		}
	}
	assert.True(t, proposed, "proposed commit is logged")
	assert.True(t, committed, "commit output is logged")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "proposed", StateProposed.String())
	assert.Equal(t, "confirmed", StateConfirmed.String())
	assert.Equal(t, "committed", StateCommitted.String())
	assert.Equal(t, "aborted", StateAborted.String())
	assert.Equal(t, "State(9)", State(9).String())
}
