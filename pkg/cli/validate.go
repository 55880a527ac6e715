package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/formats"
	"github.com/describedroutes/describedroutes/pkg/resource"
	"github.com/describedroutes/describedroutes/pkg/validation"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate resource template documents",
	Long: `Validate documents against the wire-format schema: every known key must
have the right shape; unknown keys are allowed. With --strict the decoded
tree is also checked for duplicate names and for template variables that
no params/optional_params declaration covers.

Examples:
  describedroutes validate routes.yaml
  describedroutes validate --strict 'routes/**/*.yaml'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		validator, err := validation.New()
		if err != nil {
			return err
		}

		var problems []error
		var defs []resource.Definition

		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			loaded, errs := validateDocument(validator, data, "stdin")
			defs = loaded
			problems = append(problems, errs...)
		}
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			loaded, errs := validateDocument(validator, data, path)
			defs = append(defs, loaded...)
			problems = append(problems, errs...)
		}

		if validateStrict && len(problems) == 0 {
			for _, err := range resource.Validate(resource.FromDefinitions(defs), engine()) {
				problems = append(problems, err)
			}
		}

		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), p)
			}
			return fmt.Errorf("%d validation problem(s) found", len(problems))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

// validateDocument schema-checks one raw document and, when it passes,
// decodes it. XML skips the schema step: its shape is fixed by the element
// walker, so decoding is the check.
func validateDocument(v *validation.Validator, data []byte, source string) ([]resource.Definition, []error) {
	f := formats.DetectFormat(data, source)
	if !f.CanDecode() {
		return nil, []error{fmt.Errorf("%s: cannot determine document format", source)}
	}

	if f != formats.FormatXML {
		if err := v.ValidateDocument(data, f); err != nil {
			return nil, []error{fmt.Errorf("%s: %w", source, err)}
		}
	}

	defs, err := formats.Unmarshal(data, f)
	if err != nil {
		var malformed *resource.MalformedInputError
		if errors.As(err, &malformed) {
			return nil, []error{fmt.Errorf("%s: %w", source, err)}
		}
		return nil, []error{err}
	}
	return defs, nil
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also check duplicate names and undeclared template params")
	rootCmd.AddCommand(validateCmd)
}
