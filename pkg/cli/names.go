package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

var namesCmd = &cobra.Command{
	Use:   "names [files...]",
	Short: "List every named resource template in the loaded documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := loadDocuments(cmd, args)
		if err != nil {
			return err
		}

		byName := resource.FromDefinitions(defs).AllByName()
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, name := range names {
			node := byName[name]
			tmpl := node.URITemplate()
			if tmpl == "" {
				tmpl = node.PathTemplate()
			}
			fmt.Fprintf(w, "%s\t%s\n", name, tmpl)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(namesCmd)
}
