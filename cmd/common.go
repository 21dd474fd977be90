package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/autocommit/internal/config"
	"github.com/zbiljic/autocommit/pkg/autocommit"
	"github.com/zbiljic/autocommit/pkg/llm"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// newCompleter builds the completion client from the configuration file,
// the environment and the --model flag.
func newCompleter(log *zap.SugaredLogger, model string) (autocommit.Completer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClient(cfg.LLMOptions(os.Getenv, model))
	if err != nil {
		return nil, err
	}

	log.Debugw("completion client ready", "client", client.String())

	return client, nil
}
