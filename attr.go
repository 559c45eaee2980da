package hydrogen

// Attribute is a single (name, value) pair on an Element. Attribute
// sequences are ordered and duplicates are allowed; well-formedness
// is the tree-construction engine's responsibility, not this layer's.
type Attribute struct {
	Name  string
	Value string
}
