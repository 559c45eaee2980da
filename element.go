package hydrogen

func newElement(name string) *Element {
	e := Element{}
	e.name = name
	e.typ = ElementNode
	return &e
}

// Attributes returns the element's attribute sequence in insertion
// order. The returned slice is the element's own storage; callers
// that need to keep it should copy it.
func (n *Element) Attributes() []Attribute {
	return n.attributes
}

func (n *Element) SetAttribute(name, value string) {
	n.attributes = append(n.attributes, Attribute{Name: name, Value: value})
}

// GetAttribute returns the value of the first attribute with the
// given name.
func (n *Element) GetAttribute(name string) (string, bool) {
	for _, attr := range n.attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// clone produces a childless copy with its own attribute storage, so
// that later SetAttribute calls on either element do not alias.
func (n *Element) clone() *Element {
	e := newElement(n.name)
	e.doc = n.doc
	if len(n.attributes) > 0 {
		e.attributes = append([]Attribute(nil), n.attributes...)
	}
	return e
}
