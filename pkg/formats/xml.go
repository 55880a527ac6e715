package formats

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

// Wire keys, in document order. XML element names are derived from these,
// so the XML walker tracks the JSON/YAML shape key for key.
const (
	keyName           = "name"
	keyRel            = "rel"
	keyOptions        = "options"
	keyPathTemplate   = "path_template"
	keyURITemplate    = "uri_template"
	keyParams         = "params"
	keyOptionalParams = "optional_params"
	keyChildren       = "resource_templates"
)

const paramElement = "Param"

var titleCaser = cases.Title(language.English)

// elementName converts a snake_case wire key to the CamelCase XML element
// name: "optional_params" becomes "OptionalParams".
func elementName(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "")
}

// marshalXML renders the document as XML: ResourceTemplates/ResourceTemplate
// containers, Params and OptionalParams wrapping one Param element per
// name, and a single comma-joined Options element.
func marshalXML(defs []resource.Definition) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(elementName(keyChildren))
	for _, d := range defs {
		writeTemplateElement(root, d)
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeTemplateElement(parent *etree.Element, d resource.Definition) {
	el := parent.CreateElement("ResourceTemplate")

	setText := func(key, value string) {
		if value != "" {
			el.CreateElement(elementName(key)).SetText(value)
		}
	}
	setNames := func(key string, names []string) {
		if len(names) == 0 {
			return
		}
		wrap := el.CreateElement(elementName(key))
		for _, n := range names {
			wrap.CreateElement(paramElement).SetText(n)
		}
	}

	setText(keyName, d.Name)
	setText(keyRel, d.Rel)
	setText(keyOptions, strings.Join(d.Options, ", "))
	setText(keyPathTemplate, d.PathTemplate)
	setText(keyURITemplate, d.URITemplate)
	setNames(keyParams, d.Params)
	setNames(keyOptionalParams, d.OptionalParams)

	if len(d.Children) > 0 {
		wrap := el.CreateElement(elementName(keyChildren))
		for _, c := range d.Children {
			writeTemplateElement(wrap, c)
		}
	}
}

// unmarshalXML is the inverse walk. Unknown elements are ignored.
func unmarshalXML(data []byte) ([]resource.Definition, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &resource.MalformedInputError{Message: "parsing XML document", Cause: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &resource.MalformedInputError{Message: "empty XML document"}
	}
	switch root.Tag {
	case elementName(keyChildren):
		return readTemplateElements(root), nil
	case "ResourceTemplate":
		return []resource.Definition{readTemplateElement(root)}, nil
	default:
		return nil, &resource.MalformedInputError{
			Message: "expected root element <ResourceTemplates> or <ResourceTemplate>, got <" + root.Tag + ">",
		}
	}
}

func readTemplateElements(wrap *etree.Element) []resource.Definition {
	var defs []resource.Definition
	for _, el := range wrap.SelectElements("ResourceTemplate") {
		defs = append(defs, readTemplateElement(el))
	}
	return defs
}

func readTemplateElement(el *etree.Element) resource.Definition {
	var d resource.Definition
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case elementName(keyName):
			d.Name = child.Text()
		case elementName(keyRel):
			d.Rel = child.Text()
		case elementName(keyOptions):
			d.Options = splitOptions(child.Text())
		case elementName(keyPathTemplate):
			d.PathTemplate = child.Text()
		case elementName(keyURITemplate):
			d.URITemplate = child.Text()
		case elementName(keyParams):
			d.Params = readParamElements(child)
		case elementName(keyOptionalParams):
			d.OptionalParams = readParamElements(child)
		case elementName(keyChildren):
			d.Children = readTemplateElements(child)
		}
	}
	return d
}

func readParamElements(wrap *etree.Element) []string {
	var names []string
	for _, el := range wrap.SelectElements(paramElement) {
		names = append(names, el.Text())
	}
	return names
}

func splitOptions(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
