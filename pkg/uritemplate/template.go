package uritemplate

import (
	"fmt"
	"strings"
)

// Operators defined by draft 03. Anything else inside `{-...}` is a parse
// error.
const (
	opNone   = ""
	opOpt    = "opt"
	opNeg    = "neg"
	opPrefix = "prefix"
	opSuffix = "suffix"
	opJoin   = "join"
	opList   = "list"
)

// ParseError reports a malformed template expression.
type ParseError struct {
	Template string
	Pos      int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uritemplate: %s at offset %d in %q", e.Message, e.Pos, e.Template)
}

// variable is one variable reference, with its optional default value.
type variable struct {
	name       string
	def        string
	hasDefault bool
}

// expression is the parsed form of one `{...}` group. raw keeps the
// original source text so Partial can reproduce it unchanged.
type expression struct {
	raw  string
	op   string
	arg  string
	vars []variable
}

// segment is either a literal run of template text or an expression.
type segment struct {
	literal string
	expr    *expression
}

// Template is a parsed URI template.
type Template struct {
	raw      string
	segments []segment
}

// Parse parses a URI template string.
func Parse(s string) (*Template, error) {
	t := &Template{raw: s}
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '{')
		if open < 0 {
			t.segments = append(t.segments, segment{literal: s[i:]})
			break
		}
		open += i
		if open > i {
			t.segments = append(t.segments, segment{literal: s[i:open]})
		}
		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			return nil, &ParseError{Template: s, Pos: open, Message: "unterminated expression"}
		}
		end += open
		expr, err := parseExpression(s, open, s[open+1:end])
		if err != nil {
			return nil, err
		}
		t.segments = append(t.segments, segment{expr: expr})
		i = end + 1
	}
	return t, nil
}

func parseExpression(tmpl string, pos int, body string) (*expression, error) {
	if body == "" {
		return nil, &ParseError{Template: tmpl, Pos: pos, Message: "empty expression"}
	}
	e := &expression{raw: "{" + body + "}"}

	if body[0] != '-' {
		v, err := parseVariable(tmpl, pos, body)
		if err != nil {
			return nil, err
		}
		e.vars = []variable{v}
		return e, nil
	}

	parts := strings.SplitN(body[1:], "|", 3)
	if len(parts) != 3 {
		return nil, &ParseError{Template: tmpl, Pos: pos, Message: "operator needs three |-separated parts"}
	}
	switch parts[0] {
	case opOpt, opNeg, opPrefix, opSuffix, opJoin, opList:
		e.op = parts[0]
	default:
		return nil, &ParseError{Template: tmpl, Pos: pos, Message: fmt.Sprintf("unknown operator %q", parts[0])}
	}
	e.arg = parts[1]
	for _, name := range strings.Split(parts[2], ",") {
		v, err := parseVariable(tmpl, pos, name)
		if err != nil {
			return nil, err
		}
		e.vars = append(e.vars, v)
	}
	if (e.op == opPrefix || e.op == opSuffix || e.op == opList) && len(e.vars) != 1 {
		return nil, &ParseError{Template: tmpl, Pos: pos, Message: fmt.Sprintf("operator %q takes exactly one variable", e.op)}
	}
	return e, nil
}

func parseVariable(tmpl string, pos int, s string) (variable, error) {
	v := variable{name: s}
	if eq := strings.IndexByte(s, '='); eq >= 0 {
		v.name = s[:eq]
		v.def = s[eq+1:]
		v.hasDefault = true
	}
	if v.name == "" {
		return variable{}, &ParseError{Template: tmpl, Pos: pos, Message: "empty variable name"}
	}
	for i := 0; i < len(v.name); i++ {
		c := v.name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '.', c == '-':
		default:
			return variable{}, &ParseError{Template: tmpl, Pos: pos, Message: fmt.Sprintf("invalid character %q in variable name", c)}
		}
	}
	return v, nil
}

// String returns the template source text.
func (t *Template) String() string { return t.raw }

// Names returns the variable names referenced by the template, in order of
// first appearance.
func (t *Template) Names() []string {
	var names []string
	seen := map[string]bool{}
	for _, seg := range t.segments {
		if seg.expr == nil {
			continue
		}
		for _, v := range seg.expr.vars {
			if !seen[v.name] {
				seen[v.name] = true
				names = append(names, v.name)
			}
		}
	}
	return names
}

// Expand renders the template against the given values. Variables with no
// value take their operator's "undefined" behavior: defaults apply, optional
// segments collapse to nothing.
func (t *Template) Expand(values map[string]string) string {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.expr == nil {
			b.WriteString(seg.literal)
			continue
		}
		b.WriteString(seg.expr.expand(values))
	}
	return b.String()
}

// Partial substitutes only the variables present in values, reproducing
// every other expression verbatim. Operator expressions are rendered once
// all of their variables are known and kept intact otherwise, so the result
// is still a parseable template.
func (t *Template) Partial(values map[string]string) string {
	var b strings.Builder
	for _, seg := range t.segments {
		switch {
		case seg.expr == nil:
			b.WriteString(seg.literal)
		case seg.expr.defined(values) == len(seg.expr.vars):
			b.WriteString(seg.expr.expand(values))
		default:
			b.WriteString(seg.expr.raw)
		}
	}
	return b.String()
}

// defined counts the expression's variables that have a supplied value.
// Defaults do not count: Partial relies on this to leave defaulted
// expressions in place.
func (e *expression) defined(values map[string]string) int {
	n := 0
	for _, v := range e.vars {
		if _, ok := values[v.name]; ok {
			n++
		}
	}
	return n
}

// lookup resolves a variable to its supplied value or its default.
func (v variable) lookup(values map[string]string) (string, bool) {
	if val, ok := values[v.name]; ok {
		return val, true
	}
	if v.hasDefault {
		return v.def, true
	}
	return "", false
}

func (e *expression) expand(values map[string]string) string {
	switch e.op {
	case opNone:
		if val, ok := e.vars[0].lookup(values); ok {
			return escape(val)
		}
		return ""

	case opOpt:
		if e.defined(values) > 0 {
			return e.arg
		}
		return ""

	case opNeg:
		if e.defined(values) == 0 {
			return e.arg
		}
		return ""

	case opPrefix:
		if val, ok := e.vars[0].lookup(values); ok {
			return e.arg + escape(val)
		}
		return ""

	case opSuffix:
		if val, ok := e.vars[0].lookup(values); ok {
			return escape(val) + e.arg
		}
		return ""

	case opJoin:
		var pairs []string
		for _, v := range e.vars {
			if val, ok := v.lookup(values); ok {
				pairs = append(pairs, v.name+"="+escape(val))
			}
		}
		return strings.Join(pairs, e.arg)

	case opList:
		if val, ok := e.vars[0].lookup(values); ok {
			return escape(val)
		}
		return ""
	}
	return ""
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes everything outside the RFC 3986 unreserved set.
func escape(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}
