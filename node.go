package hydrogen

import "bytes"

// Methods on docnode may only mutate the docnode's own link fields.
// Anything that needs to touch both ends of an edge (attach, detach,
// splice) lives in the package-level helpers below, which go through
// getNode() to reach the links of the operand as well. This is the
// reason Node carries the unexported getNode accessor.

func (n *docnode) getNode() *docnode { return n }

func (n *docnode) Type() NodeType { return n.typ }

func (n *docnode) Name() string { return n.name }

func (n *docnode) Parent() Node { return n.parent }

func (n *docnode) FirstChild() Node { return n.firstChild }

func (n *docnode) LastChild() Node { return n.lastChild }

func (n *docnode) NextSibling() Node { return n.next }

func (n *docnode) PrevSibling() Node { return n.prev }

func (n *docnode) OwnerDocument() *Document { return n.doc }

func (n *docnode) Content() []byte {
	b := bytes.Buffer{}
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		b.Write(e.Content())
	}
	return b.Bytes()
}

// detach unlinks n from its parent and siblings. The doctype slot of
// a Document is not part of the sibling chain, so it is special-cased
// here rather than in every caller.
func detach(n Node) {
	dn := n.getNode()
	if p := dn.parent; p != nil {
		if d, ok := p.(*Document); ok && Node(d.doctype) == n {
			d.doctype = nil
		} else {
			pn := p.getNode()
			if pn.firstChild == n {
				pn.firstChild = dn.next
			}
			if pn.lastChild == n {
				pn.lastChild = dn.prev
			}
		}
	}
	if dn.prev != nil {
		dn.prev.getNode().next = dn.next
	}
	if dn.next != nil {
		dn.next.getNode().prev = dn.prev
	}
	dn.parent = nil
	dn.prev = nil
	dn.next = nil
}

// appendChild detaches child from wherever it currently lives and
// links it as the last child of parent. Moving a node must never
// produce a multi-parent state, hence detach-before-attach.
func appendChild(parent, child Node) {
	detach(child)
	pn := parent.getNode()
	cn := child.getNode()
	if l := pn.lastChild; l != nil {
		l.getNode().next = child
		cn.prev = l
	} else {
		pn.firstChild = child
	}
	pn.lastChild = child
	cn.parent = parent
}

// insertChildBefore splices child immediately before ref, which must
// already be a child of parent.
func insertChildBefore(parent, child, ref Node) {
	detach(child)
	pn := parent.getNode()
	cn := child.getNode()
	rn := ref.getNode()
	cn.prev = rn.prev
	cn.next = ref
	if rn.prev != nil {
		rn.prev.getNode().next = child
	} else {
		pn.firstChild = child
	}
	rn.prev = child
	cn.parent = parent
}

// hasChild reports whether child is linked under parent, either in
// the ordinary child sequence or in the doctype slot.
func hasChild(parent, child Node) bool {
	if d, ok := parent.(*Document); ok && Node(d.doctype) == child {
		return true
	}
	for e := parent.FirstChild(); e != nil; e = e.NextSibling() {
		if e == child {
			return true
		}
	}
	return false
}

// isAncestor reports whether a is b itself or an ancestor of b.
func isAncestor(a, b Node) bool {
	for ; b != nil; b = b.Parent() {
		if a == b {
			return true
		}
	}
	return false
}

type WalkFunc func(Node) error

// Walk visits n and every node below it, depth first, in document
// order. The Document's doctype slot is visited before the ordinary
// children.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	if err := f(n); err != nil {
		return err
	}
	if d, ok := n.(*Document); ok && d.doctype != nil {
		if err := Walk(d.doctype, f); err != nil {
			return err
		}
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}
