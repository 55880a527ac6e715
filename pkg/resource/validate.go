package resource

// Validate runs the strict checks that construction deliberately skips:
// every name must be unique across the forest, and every variable a
// template references must be declared in params/optional_params on the
// node itself or on an ancestor (children may rely on parameters declared
// further up the tree). It returns one error per violation, nil when the
// forest is clean.
//
// Validation is advisory. Trees that fail it still expand and serialize;
// strict callers decide whether to reject them.
func Validate(c *Collection, e Engine) []error {
	var errs []error
	seen := map[string]bool{}
	for _, t := range c.roots {
		errs = append(errs, validateNode(t, e, seen, map[string]bool{})...)
	}
	return errs
}

func validateNode(t *ResourceTemplate, e Engine, seen map[string]bool, inherited map[string]bool) []error {
	var errs []error

	if t.name != "" {
		if seen[t.name] {
			errs = append(errs, &DuplicateNameError{Name: t.name})
		}
		seen[t.name] = true
	}

	declared := map[string]bool{}
	for p := range inherited {
		declared[p] = true
	}
	for _, p := range t.params {
		declared[p] = true
	}
	for _, p := range t.optionalParams {
		declared[p] = true
	}

	for _, tmpl := range []string{t.pathTemplate, t.uriTemplate} {
		if tmpl == "" {
			continue
		}
		vars, err := e.Variables(tmpl)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, v := range vars {
			if !declared[v] {
				errs = append(errs, &UndeclaredParamError{Name: t.name, Template: tmpl, Param: v})
			}
		}
	}

	for _, child := range t.children {
		errs = append(errs, validateNode(child, e, seen, declared)...)
	}
	return errs
}
