package resource

// Fields is the explicit-construction form of a resource template. Slices
// are copied by New, so a Fields value can be reused or modified afterwards.
type Fields struct {
	Name           string
	Rel            string
	Options        []string
	PathTemplate   string
	URITemplate    string
	Params         []string
	OptionalParams []string
	Children       []*ResourceTemplate
}

// ResourceTemplate describes one addressable resource: its name, its
// relation to its parent, the HTTP methods it supports, the templates that
// locate it, the parameters those templates take, and its child resources.
// Nodes are immutable once constructed.
type ResourceTemplate struct {
	name           string
	rel            string
	options        []string
	pathTemplate   string
	uriTemplate    string
	params         []string
	optionalParams []string
	children       []*ResourceTemplate
}

// New builds a resource template from explicit fields.
func New(f Fields) *ResourceTemplate {
	return &ResourceTemplate{
		name:           f.Name,
		rel:            f.Rel,
		options:        copyStrings(f.Options),
		pathTemplate:   f.PathTemplate,
		uriTemplate:    f.URITemplate,
		params:         copyStrings(f.Params),
		optionalParams: copyStrings(f.OptionalParams),
		children:       copyNodes(f.Children),
	}
}

// Name returns the template's identifier, empty if unnamed.
func (t *ResourceTemplate) Name() string { return t.name }

// Rel returns the relation of this resource to its parent. Resources
// addressed by a path parameter rather than a fixed segment have no rel.
func (t *ResourceTemplate) Rel() string { return t.rel }

// Options returns the HTTP methods the resource supports. Empty means
// unspecified, not "no methods".
func (t *ResourceTemplate) Options() []string { return copyStrings(t.options) }

// PathTemplate returns the relative URI Template, empty if unset.
func (t *ResourceTemplate) PathTemplate() string { return t.pathTemplate }

// URITemplate returns the absolute URI Template, empty if unset.
func (t *ResourceTemplate) URITemplate() string { return t.uriTemplate }

// Params returns the required parameter names, in declaration order.
func (t *ResourceTemplate) Params() []string { return copyStrings(t.params) }

// OptionalParams returns the optional parameter names, in declaration
// order.
func (t *ResourceTemplate) OptionalParams() []string { return copyStrings(t.optionalParams) }

// Children returns the child resource templates, in document order.
func (t *ResourceTemplate) Children() []*ResourceTemplate { return copyNodes(t.children) }

// PositionalParams returns params followed by optional params, minus any
// already declared as required on the supplied parent. A nil parent returns
// the full list.
func (t *ResourceTemplate) PositionalParams(parent *ResourceTemplate) []string {
	all := append(copyStrings(t.params), t.optionalParams...)
	if parent == nil {
		return all
	}
	inherited := map[string]bool{}
	for _, p := range parent.params {
		inherited[p] = true
	}
	kept := all[:0]
	for _, p := range all {
		if !inherited[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

// FindByRel returns the direct children whose rel equals rel, in document
// order. An empty rel matches children with no rel set — the ones addressed
// by a path parameter.
func (t *ResourceTemplate) FindByRel(rel string) []*ResourceTemplate {
	var found []*ResourceTemplate
	for _, c := range t.children {
		if c.rel == rel {
			found = append(found, c)
		}
	}
	return found
}

// uriTemplateForBase returns the node's uri_template, or one built from
// base and its path_template. Empty when neither is possible.
func (t *ResourceTemplate) uriTemplateForBase(base string) string {
	if t.uriTemplate != "" {
		return t.uriTemplate
	}
	if base != "" && t.pathTemplate != "" {
		return base + t.pathTemplate
	}
	return ""
}

// checkParams verifies every required parameter has a value.
func (t *ResourceTemplate) checkParams(actual Params) error {
	var missing []string
	for _, p := range t.params {
		if _, ok := actual[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &MissingParamsError{Name: t.name, Missing: missing}
	}
	return nil
}

// URIFor expands the resource's URI template against actual, preferring
// uri_template and falling back to base joined with path_template. It
// returns ErrMissingBase when only a path_template exists and base is
// empty, and a MissingTemplateError when no template exists at all.
// Parameters in actual that the template does not reference are ignored.
func (t *ResourceTemplate) URIFor(e Engine, actual Params, base string) (string, error) {
	if err := t.checkParams(actual); err != nil {
		return "", err
	}
	if t.uriTemplate == "" && t.pathTemplate == "" {
		return "", &MissingTemplateError{Kind: "uri", Name: t.name}
	}
	tmpl := t.uriTemplateForBase(base)
	if tmpl == "" {
		return "", ErrMissingBase
	}
	return e.Expand(tmpl, actual)
}

// PathFor expands the resource's path_template against actual. It returns
// a MissingTemplateError when the node has no path_template.
func (t *ResourceTemplate) PathFor(e Engine, actual Params) (string, error) {
	if err := t.checkParams(actual); err != nil {
		return "", err
	}
	if t.pathTemplate == "" {
		return "", &MissingTemplateError{Kind: "path", Name: t.name}
	}
	return e.Expand(t.pathTemplate, actual)
}

// PartialExpand returns a new subtree with every parameter in actual
// substituted into the templates and removed from the parameter lists.
// Parameters absent from actual stay open. The same actual values are
// applied to every descendant; the input tree is left untouched and shares
// no nodes with the result.
func (t *ResourceTemplate) PartialExpand(e Engine, actual Params) (*ResourceTemplate, error) {
	uriTemplate, err := partialExpandTemplate(e, t.uriTemplate, actual)
	if err != nil {
		return nil, err
	}
	pathTemplate, err := partialExpandTemplate(e, t.pathTemplate, actual)
	if err != nil {
		return nil, err
	}
	children := make([]*ResourceTemplate, 0, len(t.children))
	for _, c := range t.children {
		ec, err := c.PartialExpand(e, actual)
		if err != nil {
			return nil, err
		}
		children = append(children, ec)
	}
	return &ResourceTemplate{
		name:           t.name,
		rel:            t.rel,
		options:        copyStrings(t.options),
		uriTemplate:    uriTemplate,
		pathTemplate:   pathTemplate,
		params:         withoutKeys(t.params, actual),
		optionalParams: withoutKeys(t.optionalParams, actual),
		children:       children,
	}, nil
}

func partialExpandTemplate(e Engine, tmpl string, actual Params) (string, error) {
	if tmpl == "" {
		return "", nil
	}
	return e.Partial(tmpl, actual)
}

func copyStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyNodes(s []*ResourceTemplate) []*ResourceTemplate {
	if len(s) == 0 {
		return nil
	}
	out := make([]*ResourceTemplate, len(s))
	copy(out, s)
	return out
}

// withoutKeys filters names, dropping any that appear in actual.
func withoutKeys(names []string, actual Params) []string {
	var kept []string
	for _, n := range names {
		if _, ok := actual[n]; !ok {
			kept = append(kept, n)
		}
	}
	return kept
}
