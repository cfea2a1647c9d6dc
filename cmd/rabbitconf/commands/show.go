package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration file",
		Long: `Print the configuration file as the engine would write it back.

The output is the round-tripped document: comments, blank lines and
ordering are preserved, values that need quoting are quoted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings()
			if err != nil {
				return err
			}

			f, err := loadConf(s.ConfFile)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), f.String())
			return nil
		},
	}

	return cmd
}
