package resource

// Definition is the wire shape of a resource template: the ordered mapping
// that the JSON, YAML and XML representations encode. Only set, non-empty
// attributes appear in output; unknown keys in input documents are ignored
// by the decoders. A top-level document is a sequence of Definitions.
type Definition struct {
	Name           string       `json:"name,omitempty" yaml:"name,omitempty"`
	Rel            string       `json:"rel,omitempty" yaml:"rel,omitempty"`
	Options        []string     `json:"options,omitempty" yaml:"options,omitempty"`
	PathTemplate   string       `json:"path_template,omitempty" yaml:"path_template,omitempty"`
	URITemplate    string       `json:"uri_template,omitempty" yaml:"uri_template,omitempty"`
	Params         []string     `json:"params,omitempty" yaml:"params,omitempty"`
	OptionalParams []string     `json:"optional_params,omitempty" yaml:"optional_params,omitempty"`
	Children       []Definition `json:"resource_templates,omitempty" yaml:"resource_templates,omitempty"`
}

// FromDefinition builds a resource template tree from its wire shape.
func FromDefinition(d Definition) *ResourceTemplate {
	children := make([]*ResourceTemplate, 0, len(d.Children))
	for _, cd := range d.Children {
		children = append(children, FromDefinition(cd))
	}
	return &ResourceTemplate{
		name:           d.Name,
		rel:            d.Rel,
		options:        copyStrings(d.Options),
		pathTemplate:   d.PathTemplate,
		uriTemplate:    d.URITemplate,
		params:         copyStrings(d.Params),
		optionalParams: copyStrings(d.OptionalParams),
		children:       children,
	}
}

// FromDefinitions builds a collection from a sequence of wire definitions.
func FromDefinitions(defs []Definition) *Collection {
	roots := make([]*ResourceTemplate, 0, len(defs))
	for _, d := range defs {
		roots = append(roots, FromDefinition(d))
	}
	return &Collection{roots: roots}
}

// ToDefinition converts the node and its subtree to the wire shape.
// FromDefinition(t.ToDefinition()) reproduces the tree field for field.
func (t *ResourceTemplate) ToDefinition() Definition {
	d := Definition{
		Name:           t.name,
		Rel:            t.rel,
		Options:        copyStrings(t.options),
		PathTemplate:   t.pathTemplate,
		URITemplate:    t.uriTemplate,
		Params:         copyStrings(t.params),
		OptionalParams: copyStrings(t.optionalParams),
	}
	if len(t.children) > 0 {
		d.Children = make([]Definition, 0, len(t.children))
		for _, c := range t.children {
			d.Children = append(d.Children, c.ToDefinition())
		}
	}
	return d
}

// ToDefinitions converts the whole forest to its wire shape.
func (c *Collection) ToDefinitions() []Definition {
	defs := make([]Definition, 0, len(c.roots))
	for _, t := range c.roots {
		defs = append(defs, t.ToDefinition())
	}
	return defs
}
