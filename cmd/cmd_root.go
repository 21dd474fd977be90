package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/autocommit/internal/buildinfo"
	"github.com/zbiljic/autocommit/internal/logging"
	"github.com/zbiljic/autocommit/pkg/autocommit"
	"github.com/zbiljic/autocommit/pkg/promptsx"
	"github.com/zbiljic/autocommit/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "autocommit"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Generate Git commit message using AI",
	Long: `Generates a commit message for the current changes and commits them.

The diff of the working tree against HEAD is sent to an OpenAI compatible
chat completion API, which answers with a title and a description. The
message is shown for confirmation before git commit runs.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		Date:    buildinfo.BuildDate,
		BuiltBy: buildinfo.BuiltBy,
	}.FromBuild().String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)
	},
	Args:          cobra.NoArgs,
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = rootOptions{
	Verbosity: logging.InfoLevel,
}

type rootOptions struct {
	DryRun    bool
	Review    bool
	Force     bool
	Verbosity logging.Level
	Quiet     bool
	Verbose   bool
	Model     string
}

// level resolves the shorthand flags against --verbosity.
func (o rootOptions) level() logging.Level {
	switch {
	case o.Quiet:
		return logging.SilentLevel
	case o.Verbose:
		return logging.DebugLevel
	default:
		return o.Verbosity
	}
}

func rootAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&rootFlags.DryRun, "dry-run", false, "Print the generated commit message without committing")
	cmd.Flags().BoolVarP(&rootFlags.Review, "review", "r", false, "Open the commit message in an editor before committing")
	cmd.Flags().BoolVarP(&rootFlags.Force, "force", "f", false, "Commit without asking for confirmation")
	cmd.Flags().Var(enumflag.New(&rootFlags.Verbosity, "verbosity", logging.LevelIds, enumflag.EnumCaseInsensitive), "verbosity", "Log verbosity (silent, info, debug)")
	cmd.Flags().BoolVarP(&rootFlags.Quiet, "quiet", "q", false, "Disable log output, same as --verbosity=silent")
	cmd.Flags().BoolVarP(&rootFlags.Verbose, "verbose", "v", false, "Show debug output, same as --verbosity=debug")
	cmd.Flags().StringVarP(&rootFlags.Model, "model", "m", "", "Model to use, overrides the configuration")

	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose", "verbosity")
}

func init() {
	rootAddFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		// already reported when the user declined
		if errors.Is(err, autocommit.ErrAborted) {
			os.Exit(1)
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	log := logging.New(rootFlags.level(), cmd.ErrOrStderr())
	defer log.Sync() //nolint:errcheck

	// the dry run output is meant for pipes, keep stdout clean
	useClack := !rootFlags.DryRun && isInteractive()
	if useClack {
		prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)
	}

	repo := &gitRepository{workDir: getWd()}

	executor := &autocommit.Executor{
		Committer: repo,
		Log:       log,
		Out:       cmd.OutOrStdout(),
	}

	var status autocommit.Status = promptsx.NopStatus{}
	if useClack {
		status = &promptsx.SpinnerStatus{}
		executor.Confirmer = promptsx.PromptConfirmer{}
		executor.Printer = promptsx.NotePrinter{}
	} else {
		executor.Confirmer = promptsx.LineConfirmer{
			In:  cmd.InOrStdin(),
			Out: cmd.ErrOrStderr(),
		}
	}

	runner := &autocommit.Runner{
		Repository: repo,
		NewCompleter: func() (autocommit.Completer, error) {
			return newCompleter(log, rootFlags.Model)
		},
		Status:   status,
		Executor: executor,
		Log:      log,
	}

	state, err := runner.Run(cmd.Context(), autocommit.Options{
		DryRun: rootFlags.DryRun,
		Force:  rootFlags.Force,
		Review: rootFlags.Review,
	})
	if err != nil {
		return err
	}

	if useClack && state == autocommit.StateCommitted {
		prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green("✔")))
	}

	return nil
}
