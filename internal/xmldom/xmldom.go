// Package xmldom defines the parsed markup tree exchanged between the
// external markup parser and markup-oriented detectors.
package xmldom

type Document struct {
	Root *Element
}

type Element struct {
	Name     string
	Attrs    map[string]string
	Children []*Element
	Text     string
	Line     int
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Find returns the first descendant element with the given name, searching
// depth-first, or nil.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
