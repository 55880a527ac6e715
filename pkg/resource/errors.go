package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingBase is returned by URIFor when the template has no
// uri_template and no base URI was supplied to build one from.
var ErrMissingBase = errors.New("no uri_template and no base URI supplied")

// MissingTemplateError is returned when an expansion needs a template field
// that was never set.
type MissingTemplateError struct {
	// Kind is "path" or "uri".
	Kind string
	// Name identifies the resource template, when it has one.
	Name string
}

func (e *MissingTemplateError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("resource template %q has no %s_template", e.Name, e.Kind)
	}
	return fmt.Sprintf("resource template has no %s_template", e.Kind)
}

// MissingParamsError is returned by URIFor/PathFor when required parameters
// are absent from the supplied values.
type MissingParamsError struct {
	Name    string
	Missing []string
}

func (e *MissingParamsError) Error() string {
	msg := "missing params " + strings.Join(e.Missing, ", ")
	if e.Name != "" {
		msg = fmt.Sprintf("resource template %q: %s", e.Name, msg)
	}
	return msg
}

// MalformedInputError reports an input document whose shape does not match
// the resource template wire format.
type MalformedInputError struct {
	Message string
	Cause   error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Message, e.Cause)
	}
	return "malformed input: " + e.Message
}

func (e *MalformedInputError) Unwrap() error { return e.Cause }

// DuplicateNameError is reported by Validate when two nodes in a tree share
// a name. Lookup itself tolerates duplicates (last one in document order
// wins); strict callers can treat this as fatal.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate resource template name %q", e.Name)
}

// UndeclaredParamError is reported by Validate when a template references a
// variable that neither the node nor any of its ancestors declares.
type UndeclaredParamError struct {
	Name     string
	Template string
	Param    string
}

func (e *UndeclaredParamError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("resource template %q: template %q references undeclared param %q", e.Name, e.Template, e.Param)
	}
	return fmt.Sprintf("template %q references undeclared param %q", e.Template, e.Param)
}
