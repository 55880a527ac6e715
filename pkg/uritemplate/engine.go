package uritemplate

// Engine exposes the package's expansion functions behind the interface the
// resource package consumes. It is stateless; a single Engine can be shared
// freely across goroutines.
type Engine struct{}

// New returns the default template engine.
func New() *Engine { return &Engine{} }

// Expand parses tmpl and renders it against params.
func (e *Engine) Expand(tmpl string, params map[string]string) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}
	return t.Expand(params), nil
}

// Partial parses tmpl and substitutes only the variables present in params,
// leaving the rest as template placeholders.
func (e *Engine) Partial(tmpl string, params map[string]string) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}
	return t.Partial(params), nil
}

// Variables reports the variable names referenced by tmpl, in order of
// first appearance.
func (e *Engine) Variables(tmpl string) ([]string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return nil, err
	}
	return t.Names(), nil
}
