// Package uritemplate implements the URI Template syntax from
// draft-gregorio-uritemplate-03: simple `{var}` substitutions (with
// optional `{var=default}` defaults) and the list-style operators
// `{-opt|text|var}`, `{-neg|text|var}`, `{-prefix|text|var}`,
// `{-suffix|text|var}`, `{-join|sep|var,...}` and `{-list|sep|var}`.
//
// Templates are parsed once and can then be expanded in two modes:
//
//	t, err := uritemplate.Parse("/users/{user_id}{-prefix|.|format}")
//	// ...
//	t.Expand(map[string]string{"user_id": "dojo"})   // "/users/dojo"
//	t.Partial(map[string]string{"format": "json"})   // "/users/{user_id}.json"
//
// Expand renders a concrete string, applying each operator's "undefined"
// behavior to variables that have no value. Partial substitutes only the
// supplied variables and reproduces the remaining expressions verbatim, so
// the result is itself a valid template.
//
// Engine adapts these functions to the template-engine interface consumed
// by the resource package.
package uritemplate
