package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

var (
	expandParams   []string
	expandBase     string
	expandPathOnly bool
	expandFiles    []string
)

var expandCmd = &cobra.Command{
	Use:   "expand NAME",
	Short: "Expand a named resource template into a concrete URI or path",
	Long: `Expand the URI Template of one named resource against actual parameter
values.

Examples:
  describedroutes expand user -f routes.yaml --param user_id=dojo
  describedroutes expand user -f routes.yaml --param user_id=dojo --param format=json
  describedroutes expand user -f routes.yaml --param user_id=dojo --path-only
  describedroutes expand user -f routes.yaml --param user_id=dojo --base http://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		params, err := parseParams(expandParams)
		if err != nil {
			return err
		}
		defs, err := loadDocuments(cmd, expandFiles)
		if err != nil {
			return err
		}

		collection := resource.FromDefinitions(defs)
		node, ok := collection.AllByName()[name]
		if !ok {
			return nameNotFoundError(name)
		}

		var expanded string
		if expandPathOnly {
			expanded, err = node.PathFor(engine(), params)
		} else {
			expanded, err = node.URIFor(engine(), params, expandBase)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), expanded)
		return nil
	},
}

func init() {
	expandCmd.Flags().StringArrayVarP(&expandParams, "param", "p", nil, "Actual parameter value as key=value (repeatable)")
	expandCmd.Flags().StringVar(&expandBase, "base", "", "Base URI to prefix path templates with")
	expandCmd.Flags().BoolVar(&expandPathOnly, "path-only", false, "Expand the path template instead of the URI template")
	expandCmd.Flags().StringArrayVarP(&expandFiles, "file", "f", nil, "Document file or glob (repeatable; stdin when omitted)")
	rootCmd.AddCommand(expandCmd)
}
