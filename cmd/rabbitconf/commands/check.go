package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/conf/keys"
	"github.com/rabbitconf/rabbitconf/internal/logging"
	"github.com/rabbitconf/rabbitconf/internal/watcher"
)

func newCheckCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the configuration file for unknown keys",
		Long: `Check the configuration file for keys outside the known RabbitMQ
configuration schema. Each unknown key is reported with similar known
keys when any exist. The command fails when unknown keys are present.

With --watch the file is re-checked after every change until the
command is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings()
			if err != nil {
				return err
			}

			if !watch {
				return runCheck(s.ConfFile)
			}

			// In watch mode findings are reported but do not abort.
			if err := runCheck(s.ConfFile); err != nil {
				logging.Errorf("%v", err)
			}

			w, err := watcher.New(s.ConfFile)
			if err != nil {
				return err
			}
			defer w.Close()

			logging.Infof("watching %s", s.ConfFile)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					if ev.Op == watcher.OpRemove {
						logging.Warnf("%s was removed", s.ConfFile)
						continue
					}
					if err := runCheck(s.ConfFile); err != nil {
						logging.Errorf("%v", err)
					}
				case werr, ok := <-w.Errors():
					if !ok {
						return nil
					}
					log.Error().Err(werr).Msg("watch error")
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check on every file change")

	return cmd
}

// runCheck parses the file and reports every key outside the known
// schema. It returns an error when any are found.
func runCheck(path string) error {
	f, err := loadConf(path)
	if err != nil {
		return err
	}

	allKeys := f.Keys()
	var unknown []string
	for _, k := range allKeys {
		if !keys.IsKnownKey(k) {
			unknown = append(unknown, k)
		}
	}

	log.Debug().
		Str("path", path).
		Int("keys", len(allKeys)).
		Int("unknown", len(unknown)).
		Msg("checked configuration")

	if len(unknown) == 0 {
		logging.Successf("%s: %d keys, all known", path, len(allKeys))
		return nil
	}

	for _, k := range unknown {
		if suggestions := keys.SuggestSimilarKeys(k); len(suggestions) > 0 {
			logging.Warnf("unknown key: %s (similar: %s)", k, strings.Join(suggestions, ", "))
		} else {
			logging.Warnf("unknown key: %s", k)
		}
	}
	return fmt.Errorf("%s: %d unknown key(s)", path, len(unknown))
}
