// Package validation checks raw resource template documents against a JSON
// Schema for the wire format before they are decoded. The schema mirrors
// resource.Definition: it pins the type of every known key and permits
// unknown keys, so documents from richer formats still pass.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/describedroutes/describedroutes/pkg/formats"
	"github.com/describedroutes/describedroutes/pkg/resource"
)

const schemaID = "https://describedroutes.dev/schema/resource-templates.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://describedroutes.dev/schema/resource-templates.json",
  "oneOf": [
    {"$ref": "#/$defs/resource_template"},
    {"type": "array", "items": {"$ref": "#/$defs/resource_template"}}
  ],
  "$defs": {
    "resource_template": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "rel": {"type": "string"},
        "options": {"type": "array", "items": {"type": "string"}},
        "path_template": {"type": "string"},
        "uri_template": {"type": "string"},
        "params": {"type": "array", "items": {"type": "string"}},
        "optional_params": {"type": "array", "items": {"type": "string"}},
        "resource_templates": {
          "type": "array",
          "items": {"$ref": "#/$defs/resource_template"}
        }
      }
    }
  }
}`

// Validator validates documents against the wire-format schema. The schema
// is compiled once; a Validator is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the embedded schema.
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaID, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("loading wire-format schema: %w", err)
	}
	schema, err := compiler.Compile(schemaID)
	if err != nil {
		return nil, fmt.Errorf("compiling wire-format schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateDocument checks a raw JSON or YAML document. Schema violations
// come back as a resource.MalformedInputError wrapping the schema error.
func (v *Validator) ValidateDocument(data []byte, f formats.Format) error {
	var doc any
	switch f {
	case formats.FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return &resource.MalformedInputError{Message: "decoding JSON document", Cause: err}
		}
	case formats.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return &resource.MalformedInputError{Message: "decoding YAML document", Cause: err}
		}
	default:
		return fmt.Errorf("schema validation supports JSON and YAML documents, not %q", f)
	}

	if err := v.schema.Validate(doc); err != nil {
		return &resource.MalformedInputError{Message: "document does not match the resource template format", Cause: err}
	}
	return nil
}
