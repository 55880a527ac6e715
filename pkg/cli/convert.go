package cli

import (
	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/formats"
)

var (
	convertTo     string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert resource template documents between formats",
	Long: `Convert resource template documents between JSON, YAML, XML and the text
report. Input files may mix formats; the output is one merged document.

Examples:
  describedroutes convert --to xml routes.yaml
  describedroutes convert --to json 'routes/**/*.yaml' -o routes.json
  cat routes.json | describedroutes convert --to yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat(convertTo)
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
		return writeOutput(cmd, out, convertOutput)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml", "Target format (json, yaml, xml, text)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}
