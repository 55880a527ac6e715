package cli

import (
	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/formats"
	"github.com/describedroutes/describedroutes/pkg/resource"
)

var (
	partialParams []string
	partialTo     string
	partialOutput string
	partialName   string
)

var partialCmd = &cobra.Command{
	Use:   "partial [files...]",
	Short: "Partially expand a template tree with known parameter values",
	Long: `Substitute known parameter values throughout a whole template tree,
producing a smaller tree with the remaining parameters still open. With
--name the output is the subtree rooted at that resource.

Examples:
  describedroutes partial routes.yaml --param user_id=dojo
  describedroutes partial routes.yaml --param user_id=dojo --name user --to json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat(partialTo)
		if err != nil {
			return err
		}
		params, err := parseParams(partialParams)
		if err != nil {
			return err
		}
		defs, err := loadDocuments(cmd, args)
		if err != nil {
			return err
		}

		collection := resource.FromDefinitions(defs)
		if partialName != "" {
			node, ok := collection.AllByName()[partialName]
			if !ok {
				return nameNotFoundError(partialName)
			}
			collection = resource.NewCollection(node)
		}

		expanded, err := collection.PartialExpand(engine(), params)
		if err != nil {
			return err
		}
		out, err := formats.Marshal(expanded.ToDefinitions(), f)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out, partialOutput)
	},
}

func init() {
	partialCmd.Flags().StringArrayVarP(&partialParams, "param", "p", nil, "Known parameter value as key=value (repeatable)")
	partialCmd.Flags().StringVar(&partialTo, "to", "yaml", "Output format (json, yaml, xml, text)")
	partialCmd.Flags().StringVarP(&partialOutput, "output", "o", "", "Write to file instead of stdout")
	partialCmd.Flags().StringVar(&partialName, "name", "", "Only expand the subtree rooted at this resource")
	rootCmd.AddCommand(partialCmd)
}
