package resource

import "sync"

// Collection is an ordered forest of root resource templates. Like the
// nodes it holds, a Collection is immutable after construction; the name
// index built by AllByName is the only internal state and is computed at
// most once.
type Collection struct {
	roots []*ResourceTemplate

	nameOnce sync.Once
	byName   map[string]*ResourceTemplate
}

// NewCollection builds a collection from the given root templates.
func NewCollection(roots ...*ResourceTemplate) *Collection {
	return &Collection{roots: copyNodes(roots)}
}

// Roots returns the root templates in document order.
func (c *Collection) Roots() []*ResourceTemplate { return copyNodes(c.roots) }

// Len returns the number of root templates.
func (c *Collection) Len() int { return len(c.roots) }

// AllByName returns every named template anywhere in the forest, keyed by
// name. When two nodes share a name, the later one in depth-first document
// order (parent before children) wins; Validate reports such duplicates.
// The index is memoized and the returned map is shared — treat it as
// read-only.
func (c *Collection) AllByName() map[string]*ResourceTemplate {
	c.nameOnce.Do(func() {
		c.byName = map[string]*ResourceTemplate{}
		for _, t := range c.roots {
			indexByName(t, c.byName)
		}
	})
	return c.byName
}

func indexByName(t *ResourceTemplate, byName map[string]*ResourceTemplate) {
	if t.name != "" {
		byName[t.name] = t
	}
	for _, child := range t.children {
		indexByName(child, byName)
	}
}

// PartialExpand applies ResourceTemplate.PartialExpand to every root,
// returning a new forest of the same shape. An empty actual yields an
// equal, freshly built copy.
func (c *Collection) PartialExpand(e Engine, actual Params) (*Collection, error) {
	roots := make([]*ResourceTemplate, 0, len(c.roots))
	for _, t := range c.roots {
		et, err := t.PartialExpand(e, actual)
		if err != nil {
			return nil, err
		}
		roots = append(roots, et)
	}
	return &Collection{roots: roots}, nil
}
