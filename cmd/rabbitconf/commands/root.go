// Package commands implements the rabbitconf command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/conf"
	"github.com/rabbitconf/rabbitconf/internal/logging"
	"github.com/rabbitconf/rabbitconf/internal/settings"
)

var (
	// Global flags
	confFile string
	verbose  bool
	jsonLogs bool
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rabbitconf",
		Short: "Read and edit RabbitMQ configuration files",
		Long: `rabbitconf reads, queries and edits RabbitMQ configuration files in the
new-style key = value format.

Lines the tool does not touch survive byte for byte: comments, blank
lines and the order of settings are preserved when a file is rewritten.
Keys are validated against the known RabbitMQ configuration schema.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose, jsonLogs, nil)
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&confFile, "file", "c", "", "configuration file to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "write diagnostics as JSON lines")

	// Add subcommands
	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newSetCommand())
	rootCmd.AddCommand(newUnsetCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// resolveSettings merges the settings file, environment and the --file
// flag into the effective tool settings. The flag wins.
func resolveSettings() (settings.Settings, error) {
	path, err := settings.DefaultPath()
	if err != nil {
		path = ""
	}

	s, err := settings.Load(path)
	if err != nil {
		return s, err
	}
	if confFile != "" {
		s.ConfFile = confFile
	}
	return s, nil
}

// loadConf reads the configuration file, turning a missing file into a
// friendlier error.
func loadConf(path string) (*conf.File, error) {
	f, err := conf.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, err
	}
	return f, nil
}

// loadOrNew reads the configuration file, starting from an empty
// document when the file does not exist yet.
func loadOrNew(path string) (*conf.File, error) {
	f, err := conf.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf.New(), nil
		}
		return nil, err
	}
	return f, nil
}
