package cli

import (
	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/formats"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [files...]",
	Short: "Print resource template documents as a text report",
	Long: `Print resource template documents, by default as an indented text report
with one line per resource. Use --output to render another format.

Examples:
  describedroutes show routes.yaml
  describedroutes show 'routes/**/*.yaml'
  cat routes.json | describedroutes show --output yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat(showFormat)
		if err != nil {
			return err
		}
		defs, err := loadDocuments(cmd, args)
		if err != nil {
			return err
		}
		out, err := formats.Marshal(defs, f)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out, "")
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "output", "text", "Output format (text, json, yaml, xml)")
	rootCmd.AddCommand(showCmd)
}
