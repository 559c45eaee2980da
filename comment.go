package hydrogen

func newComment(b []byte) *Comment {
	c := Comment{}
	c.typ = CommentNode
	c.content = b
	c.name = "(comment)"
	return &c
}

func (n *Comment) Content() []byte {
	return n.content
}

func (n *Comment) clone() *Comment {
	c := newComment(append([]byte(nil), n.content...))
	c.doc = n.doc
	return c
}
