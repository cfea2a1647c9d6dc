package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

func newExportCommand() *cobra.Command {
	var prettyPrint bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration as nested JSON",
		Long: `Export the configuration as a nested JSON object on stdout.

Dotted keys become nested objects; values stay strings. Numeric
segments such as the positions in auth_backends.1 stay object keys,
they are never turned into array indices.`,
		Example: `  rabbitconf export | jq .listeners.tcp`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings()
			if err != nil {
				return err
			}

			f, err := loadConf(s.ConfFile)
			if err != nil {
				return err
			}

			out := "{}"
			for _, k := range f.Keys() {
				v, _ := f.Get(k)
				out, err = sjson.Set(out, exportPath(k), v)
				if err != nil {
					return fmt.Errorf("building JSON for %s: %w", k, err)
				}
			}

			log.Debug().
				Str("path", s.ConfFile).
				Int("keys", len(f.Keys())).
				Msg("exported configuration")

			if prettyPrint {
				out = strings.TrimSuffix(string(pretty.Pretty([]byte(out))), "\n")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&prettyPrint, "pretty", false, "indent the JSON output")

	return cmd
}

// exportPath converts a configuration key into an sjson path. All-digit
// segments get a colon prefix so sjson keeps them as object keys
// instead of treating them as array indices.
func exportPath(key string) string {
	segments := strings.Split(key, ".")
	for i, seg := range segments {
		if allDigits(seg) {
			segments[i] = ":" + seg
		}
	}
	return strings.Join(segments, ".")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
