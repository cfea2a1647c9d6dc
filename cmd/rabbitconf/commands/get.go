package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/conf"
)

func newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key|pattern>",
		Short: "Get a configuration key value",
		Long: `Get a configuration key value.

Supports pattern matching with * as a wildcard for a single segment:

  * listeners.tcp.* matches listeners.tcp.default, listeners.tcp.amqp, etc.
  * log.*.level matches log.console.level, log.file.level, etc.

For a plain key the raw value is printed; for a pattern every matching
key = value line is printed in alphabetical order.`,
		Example: `  # Print one value
  rabbitconf get heartbeat

  # Print all TCP listeners
  rabbitconf get 'listeners.tcp.*'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			s, err := resolveSettings()
			if err != nil {
				return err
			}

			log.Debug().
				Str("path", s.ConfFile).
				Str("key", key).
				Msg("reading configuration")

			f, err := loadConf(s.ConfFile)
			if err != nil {
				return err
			}

			if conf.IsPattern(key) {
				matches := f.GetMatching(key)
				if len(matches) == 0 {
					return fmt.Errorf("no keys matching pattern: %s", key)
				}
				for _, m := range matches {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", m.Key, m.Value)
				}
				return nil
			}

			value, ok := f.Get(key)
			if !ok {
				return fmt.Errorf("key not found: %s", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	return cmd
}
