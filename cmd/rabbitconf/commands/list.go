package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rabbitconf/rabbitconf/internal/conf"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List configuration keys and values",
		Long: `List configuration keys and values in alphabetical order.

An optional pattern restricts the listing; * matches exactly one
key segment.`,
		Example: `  # Everything
  rabbitconf list

  # Only SSL listener settings
  rabbitconf list 'listeners.ssl.*'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings()
			if err != nil {
				return err
			}

			f, err := loadConf(s.ConfFile)
			if err != nil {
				return err
			}

			var items []conf.Setting
			if len(args) == 1 {
				items = f.GetMatching(args[0])
			} else {
				for _, k := range f.Keys() {
					v, _ := f.Get(k)
					items = append(items, conf.Setting{Key: k, Value: v})
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\n", item.Key, item.Value)
			}
			return w.Flush()
		},
	}

	return cmd
}
