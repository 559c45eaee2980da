package hydrogen

func newText(b []byte) *Text {
	t := Text{}
	t.typ = TextNode
	t.content = b
	t.name = "(text)"
	return &t
}

func (n *Text) Content() []byte {
	return n.content
}

func (n *Text) AddContent(b []byte) {
	n.content = append(n.content, b...)
}

func (n *Text) clone() *Text {
	t := newText(append([]byte(nil), n.content...))
	t.doc = n.doc
	return t
}
