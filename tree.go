package hydrogen

import (
	"github.com/lestrrat-go/pdebug/v3"
)

// Structural edits, driven by the tree-construction engine. Every
// operation takes node handles the engine got from this session; a
// handle that does not belong where the engine claims results in a
// ReferenceNotFoundError rather than a corrupted tree.

// Append attaches child as the last child of parent, detaching it
// from any prior parent first. A doctype appended to the document
// goes into the distinguished doctype slot instead of the child
// sequence. A nil parent or child is a legitimate discard signal and
// the call is a successful no-op. Attaching a node into its own
// subtree is rejected with ErrInvalidOperation.
func (s *Session) Append(parent, child Node) (Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	if parent == nil || child == nil {
		return child, nil
	}

	if child.Type() == DocumentNode {
		return nil, ErrInvalidOperation
	}
	// attaching a node under itself or under one of its descendants
	// would close a cycle
	if isAncestor(child, parent) {
		return nil, ErrInvalidOperation
	}
	if d, ok := parent.(*Document); ok {
		if dt, ok := child.(*DocumentType); ok {
			if prev := d.setDoctype(dt); prev != nil {
				s.registry.settle(prev)
			}
			return dt, nil
		}
	}
	switch parent.Type() {
	case ElementNode, DocumentNode:
	default:
		return nil, ErrInvalidOperation
	}

	appendChild(parent, child)
	return child, nil
}

// InsertBefore splices child immediately before ref among parent's
// children. ref not being a child of parent is an internal
// consistency violation between engine and adapter, reported as a
// ReferenceNotFoundError.
func (s *Session) InsertBefore(parent, child, ref Node) (Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	if parent == nil || child == nil {
		return child, nil
	}
	if isAncestor(child, parent) {
		return nil, ErrInvalidOperation
	}
	if ref == nil || ref.Parent() != parent || !hasChild(parent, ref) {
		return nil, &ReferenceNotFoundError{Op: "InsertBefore"}
	}
	if child == ref {
		return child, nil
	}

	insertChildBefore(parent, child, ref)
	return child, nil
}

// RemoveChild unlinks child from parent. The node is not destroyed;
// whether it stays alive is governed by the registry's liveness rule,
// since the engine may be about to reinsert it elsewhere.
func (s *Session) RemoveChild(parent, child Node) (Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	if parent == nil || child == nil {
		return nil, ErrNilNode
	}
	if child.Parent() != parent || !hasChild(parent, child) {
		return nil, &ReferenceNotFoundError{Op: "RemoveChild"}
	}

	detach(child)
	return child, nil
}

// Clone produces a structurally independent copy of n with its own
// identity. A shallow element clone is childless but keeps the
// attribute sequence; a deep clone copies the whole subtree, each
// descendant registered on its own. Doctype clones are always shallow
// since doctypes are leaves in this model.
func (s *Session) Clone(n Node, deep bool) (Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNilNode
	}

	switch n := n.(type) {
	case *Element:
		e := n.clone()
		s.registry.register(e)
		if deep {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cc, err := s.Clone(c, true)
				if err != nil {
					return nil, err
				}
				appendChild(e, cc)
			}
		}
		return e, nil
	case *Text:
		t := n.clone()
		s.registry.register(t)
		return t, nil
	case *Comment:
		c := n.clone()
		s.registry.register(c)
		return c, nil
	case *DocumentType:
		dt := n.clone()
		s.registry.register(dt)
		return dt, nil
	}
	return nil, ErrInvalidOperation
}

// ReparentChildren moves every child of n, in order, to the end of
// newParent's child sequence, leaving n childless. The moved nodes
// keep their identities; nothing is destroyed or re-registered.
func (s *Session) ReparentChildren(n, newParent Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return err
	}
	if n == nil || newParent == nil {
		return ErrNilNode
	}
	switch newParent.Type() {
	case ElementNode, DocumentNode:
	default:
		return ErrInvalidOperation
	}
	// a destination inside n's own subtree would either loop forever
	// (newParent == n) or close a cycle
	if isAncestor(n, newParent) {
		return ErrInvalidOperation
	}

	for {
		c := n.FirstChild()
		if c == nil {
			return nil
		}
		appendChild(newParent, c)
	}
}

// AddAttributes appends each (name, value) pair to the element's
// attribute sequence. Duplicate names are not deduplicated; attribute
// uniqueness is the engine's responsibility.
func (s *Session) AddAttributes(n Node, attrs []Attribute) error {
	if err := s.begin(); err != nil {
		return err
	}
	e, ok := n.(*Element)
	if !ok {
		return ErrInvalidOperation
	}
	attrs, err := s.decodeAttrs(attrs)
	if err != nil {
		return err
	}
	e.attributes = append(e.attributes, attrs...)
	return nil
}

// GetParent returns n's current parent. With elementOnly set, a
// parent that exists but is not an element (the document root, say)
// comes back as nil, which lets the engine distinguish "no element
// ancestor" from "no ancestor at all".
func (s *Session) GetParent(n Node, elementOnly bool) Node {
	if n == nil {
		return nil
	}
	p := n.Parent()
	if p == nil {
		return nil
	}
	if elementOnly && p.Type() != ElementNode {
		return nil
	}
	return p
}

// HasChildren reports whether n has a non-empty child sequence. Leaf
// node types simply report false.
func (s *Session) HasChildren(n Node) bool {
	return n != nil && n.FirstChild() != nil
}
