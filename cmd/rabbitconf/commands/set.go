package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/conf/keys"
	"github.com/rabbitconf/rabbitconf/internal/logging"
)

func newSetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration key value",
		Long: `Set a configuration key value.

Keys are validated against the known RabbitMQ configuration schema.
Use --force to set unknown keys. The file is created when it does not
exist yet; existing content keeps its layout.`,
		Example: `  # Change the main listener port
  rabbitconf set listeners.tcp.default 5673

  # Values with spaces are quoted on disk automatically
  rabbitconf set cluster_name 'my cluster'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			s, err := resolveSettings()
			if err != nil {
				return err
			}

			if !keys.IsValidKeyFormat(key) {
				return fmt.Errorf("invalid key format: %s", key)
			}

			if !keys.IsKnownKey(key) {
				if force || s.AllowUnknown {
					logging.Warnf("unknown key: %s", key)
				} else {
					suggestions := keys.SuggestSimilarKeys(key)
					if len(suggestions) == 0 {
						return fmt.Errorf("unknown configuration key: %s", key)
					}
					return fmt.Errorf("unknown configuration key: %s. Similar keys: %s",
						key, strings.Join(suggestions, ", "))
				}
			}

			log.Debug().
				Str("path", s.ConfFile).
				Str("key", key).
				Msg("writing configuration")

			f, err := loadOrNew(s.ConfFile)
			if err != nil {
				return err
			}

			updated := f.ContainsKey(key)
			f.Set(key, value)

			if dir := filepath.Dir(s.ConfFile); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := f.Save(s.ConfFile); err != nil {
				return err
			}

			if updated {
				logging.Infof("updated %s = %s", key, value)
			} else {
				logging.Infof("set %s = %s", key, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "allow setting unknown keys")

	return cmd
}
