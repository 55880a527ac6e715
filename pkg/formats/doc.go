// Package formats converts resource template documents between their
// external representations. A document is a sequence of wire definitions
// (see resource.Definition); formats encodes it as JSON, YAML, XML or a
// plain-text report, decodes the first three back, auto-detects the format
// of raw input, and loads documents from files or ** glob patterns.
//
//	defs, err := formats.LoadGlob("routes/**/*.yaml")
//	// ...
//	out, err := formats.Marshal(defs, formats.FormatXML)
//
// The text report is write-only: one line per node, indented by depth,
// showing the link or parameter that addresses the node, its name, its
// HTTP methods, and its URI (or path) template.
package formats
