package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbiljic/autocommit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Args:  cobra.NoArgs,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the configuration file in use",
	Long:  `Prints the configuration file that would be loaded. When none exists, the default location is printed instead.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigPathE,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInitE,
}

var configInitFlags = configInitOptions{}

type configInitOptions struct {
	Path  string
	Force bool
}

func init() {
	configInitCmd.Flags().StringVar(&configInitFlags.Path, "path", "", "Where to write the file (default ~/.config/autocommit/autocommit.json)")
	configInitCmd.Flags().BoolVarP(&configInitFlags.Force, "force", "f", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigPathE(cmd *cobra.Command, args []string) error {
	path, found := config.GetPath()
	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (not created)\n", config.GetDefaultPath())
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInitE(cmd *cobra.Command, args []string) error {
	path := configInitFlags.Path
	if path == "" {
		path = config.GetDefaultPath()
	}

	if !configInitFlags.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := config.Save(config.NewDefault(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
