package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/logging"
)

func newUnsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration key",
		Long: `Remove a configuration key.

The key's line is blanked out; every other line keeps its position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			s, err := resolveSettings()
			if err != nil {
				return err
			}

			f, err := loadConf(s.ConfFile)
			if err != nil {
				return err
			}

			if !f.Remove(key) {
				return fmt.Errorf("key not found: %s", key)
			}
			if err := f.Save(s.ConfFile); err != nil {
				return err
			}

			logging.Infof("unset %s", key)
			return nil
		},
	}

	return cmd
}
