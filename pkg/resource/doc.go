// Package resource models the URI structure of a web application as a tree
// of resource templates: framework-neutral metadata naming each addressable
// resource, the HTTP methods it answers to, the URI Template that locates
// it, and its related subresources.
//
// A tree is built either from explicit fields or from the wire Definition
// shape that the JSON/YAML/XML representations decode into:
//
//	users := resource.New(resource.Fields{
//	    Name:           "users",
//	    PathTemplate:   "/users{-prefix|.|format}",
//	    OptionalParams: []string{"format"},
//	    Options:        []string{"GET", "POST"},
//	})
//
// Nodes are immutable after construction. The two algorithmic operations
// are full expansion (URIFor/PathFor, producing a concrete URI or path for
// one resource) and partial expansion (PartialExpand, rewriting a whole
// subtree with the known parameters substituted and the rest left open).
// Both delegate template rendering to an injected Engine; package
// uritemplate provides the default implementation.
//
// Collection holds a forest of root templates and indexes every named node
// in it via AllByName.
package resource
