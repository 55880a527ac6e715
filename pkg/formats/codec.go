package formats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

// Marshal encodes a document in the given format. JSON and YAML encode the
// wire definitions directly; XML and text have their own walkers.
func Marshal(defs []resource.Definition, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatXML:
		return marshalXML(defs)
	case FormatText:
		return []byte(Report(defs)), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// Unmarshal decodes a document. A top-level document is a sequence of
// resource templates; a single top-level mapping is accepted too and
// treated as a one-element sequence. Unknown keys are ignored. Shape
// errors come back as a resource.MalformedInputError.
func Unmarshal(data []byte, f Format) ([]resource.Definition, error) {
	switch f {
	case FormatJSON:
		return unmarshalJSON(data)
	case FormatYAML:
		return unmarshalYAML(data)
	case FormatXML:
		return unmarshalXML(data)
	case FormatText:
		return nil, errors.New("the text report cannot be decoded")
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

func unmarshalJSON(data []byte) ([]resource.Definition, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var one resource.Definition
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, &resource.MalformedInputError{Message: "decoding JSON resource template", Cause: err}
		}
		return []resource.Definition{one}, nil
	}
	var defs []resource.Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, &resource.MalformedInputError{Message: "decoding JSON document", Cause: err}
	}
	return defs, nil
}

func unmarshalYAML(data []byte) ([]resource.Definition, error) {
	// Decode to a node first to tell a sequence from a single mapping.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &resource.MalformedInputError{Message: "decoding YAML document", Cause: err}
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.MappingNode {
		var one resource.Definition
		if err := doc.Decode(&one); err != nil {
			return nil, &resource.MalformedInputError{Message: "decoding YAML resource template", Cause: err}
		}
		return []resource.Definition{one}, nil
	}
	var defs []resource.Definition
	if err := doc.Decode(&defs); err != nil {
		return nil, &resource.MalformedInputError{Message: "decoding YAML document", Cause: err}
	}
	return defs, nil
}
