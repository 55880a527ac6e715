package resource

// Params carries actual parameter values for expansion operations.
type Params map[string]string

// Engine is the URI Template collaborator the tree delegates rendering to.
// The resource package never interprets template syntax itself.
//
// Expand renders a concrete string; variables absent from params take the
// template's "absent" behavior (optional segments collapse). Partial
// substitutes only the variables present in params and leaves the rest as
// placeholders, returning a string that is still a valid template.
// Variables reports the variable names a template references.
//
// Engine errors (malformed template syntax) are propagated to callers
// unchanged.
type Engine interface {
	Expand(template string, params map[string]string) (string, error)
	Partial(template string, params map[string]string) (string, error)
	Variables(template string) ([]string, error)
}
