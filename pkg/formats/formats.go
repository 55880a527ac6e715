package formats

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies an external representation of a resource template
// document.
type Format string

// Supported formats.
const (
	FormatUnknown Format = ""
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatXML     Format = "xml"
	FormatText    Format = "text"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatXML, FormatText:
		return true
	default:
		return false
	}
}

// CanDecode reports whether documents in this format can be read back.
// The text report is write-only.
func (f Format) CanDecode() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatXML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name. Returns FormatUnknown for anything it
// does not recognize.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "xml":
		return FormatXML
	case "text", "txt":
		return FormatText
	default:
		return FormatUnknown
	}
}

// AllFormats returns every supported format.
func AllFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatXML, FormatText}
}

// DecodeFormats returns the formats that support decoding.
func DecodeFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatXML}
}

// DetectFormat guesses the format of a document from its filename
// extension, falling back to content sniffing. Returns FormatUnknown when
// neither gives an answer.
func DetectFormat(data []byte, filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatXML
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	switch trimmed[0] {
	case '<':
		return FormatXML
	case '{', '[':
		return FormatJSON
	}
	// YAML is the loosest syntax; sniff for the keys every document has.
	if bytes.Contains(trimmed, []byte("name:")) ||
		bytes.Contains(trimmed, []byte("path_template:")) ||
		bytes.Contains(trimmed, []byte("uri_template:")) {
		return FormatYAML
	}
	return FormatUnknown
}
