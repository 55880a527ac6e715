package formats

import (
	"strings"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

// Report renders the document as an indented plain-text table, one line
// per node. The first column shows how the node is addressed: its name at
// the root, its rel below that, or the new path parameters in braces when
// it has no rel. Remaining columns are the name, the comma-joined HTTP
// methods, and the URI template (path template when no URI is known).
// Column widths are padded for readability only.
func Report(defs []resource.Definition) string {
	var rows [][4]string
	appendRows(&rows, defs, nil, "")

	var widths [3]int
	for _, row := range rows {
		for col := 0; col < 3; col++ {
			if len(row[col]) > widths[col] {
				widths[col] = len(row[col])
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for col := 0; col < 3; col++ {
			b.WriteString(row[col])
			b.WriteString(strings.Repeat(" ", widths[col]-len(row[col])+1))
		}
		b.WriteString(row[3])
		b.WriteByte('\n')
	}
	return b.String()
}

func appendRows(rows *[][4]string, defs []resource.Definition, parent *resource.Definition, indent string) {
	for i := range defs {
		d := defs[i]

		var link string
		newParams := d.Params
		if parent != nil {
			link = d.Rel
			newParams = subtractParams(d.Params, parent.Params)
		} else {
			link = d.Name
		}
		var braced []string
		for _, p := range newParams {
			braced = append(braced, "{"+p+"}")
		}

		tmpl := d.URITemplate
		if tmpl == "" {
			tmpl = d.PathTemplate
		}

		*rows = append(*rows, [4]string{
			indent + link + strings.Join(braced, ", "),
			d.Name,
			strings.Join(d.Options, ", "),
			tmpl,
		})
		appendRows(rows, d.Children, &d, indent+"  ")
	}
}

func subtractParams(params, parentParams []string) []string {
	inherited := map[string]bool{}
	for _, p := range parentParams {
		inherited[p] = true
	}
	var kept []string
	for _, p := range params {
		if !inherited[p] {
			kept = append(kept, p)
		}
	}
	return kept
}
