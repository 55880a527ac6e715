package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/formats"
	"github.com/describedroutes/describedroutes/pkg/resource"
)

// loadDocuments reads the documents named by args (paths or ** globs) and
// concatenates them into one forest. With no args it reads stdin and
// sniffs the format from the content.
func loadDocuments(cmd *cobra.Command, args []string) ([]resource.Definition, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		f := formats.DetectFormat(data, "")
		if !f.CanDecode() {
			return nil, errors.New("cannot determine the format of stdin; pipe JSON, YAML or XML")
		}
		return formats.Unmarshal(data, f)
	}

	var defs []resource.Definition
	for _, arg := range args {
		loaded, err := formats.LoadGlob(arg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}
	logger.Debug("loaded documents", "inputs", len(args), "templates", len(defs))
	return defs, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, data []byte, path string) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// parseParams turns repeated key=value flag values into a Params map.
func parseParams(pairs []string) (resource.Params, error) {
	params := resource.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func nameNotFoundError(name string) error {
	return fmt.Errorf("no resource template named %q in the loaded documents", name)
}

// outputFormat resolves a --to/--output flag value.
func outputFormat(name string) (formats.Format, error) {
	f := formats.ParseFormat(name)
	if !f.IsValid() {
		return formats.FormatUnknown, fmt.Errorf("unknown format %q (expected one of json, yaml, xml, text)", name)
	}
	return f, nil
}
