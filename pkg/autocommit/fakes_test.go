package autocommit

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type commitCall struct {
	message string
	review  bool
}

type fakeRepository struct {
	inside    bool
	insideErr error
	staged    string
	full      string
	diffErr   error
	output    []byte
	commitErr error

	calls   []string
	commits []commitCall
}

func (r *fakeRepository) IsInsideWorkTree() (bool, error) {
	r.calls = append(r.calls, "rev-parse")
	return r.inside, r.insideErr
}

func (r *fakeRepository) StagedDiff() (string, error) {
	r.calls = append(r.calls, "diff --cached")
	return r.staged, nil
}

func (r *fakeRepository) FullDiff() (string, error) {
	r.calls = append(r.calls, "diff HEAD")
	return r.full, r.diffErr
}

func (r *fakeRepository) Commit(message string, review bool) ([]byte, error) {
	r.calls = append(r.calls, "commit")
	r.commits = append(r.commits, commitCall{message: message, review: review})
	return r.output, r.commitErr
}

type fakeCompleter struct {
	arguments string
	err       error

	diffs []string
}

func (c *fakeCompleter) RequestCommit(_ context.Context, diff string, schema *jsonschema.Definition) (string, error) {
	if schema == nil {
		return "", errors.New("schema is required")
	}
	c.diffs = append(c.diffs, diff)
	return c.arguments, c.err
}

type fakeConfirmer struct {
	approved bool
	review   bool
	err      error

	questions []string
}

func (c *fakeConfirmer) Confirm(question string) (bool, bool, error) {
	c.questions = append(c.questions, question)
	return c.approved, c.review, c.err
}

type fakeStatus struct {
	events []string
}

func (s *fakeStatus) Start(label string)  { s.events = append(s.events, "start: "+label) }
func (s *fakeStatus) Stop(message string) { s.events = append(s.events, "stop: "+message) }
func (s *fakeStatus) Fail(message string) { s.events = append(s.events, "fail: "+message) }

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}
