package hydrogen

func NewDocument() *Document {
	doc := &Document{}
	doc.typ = DocumentNode
	doc.name = "#document"
	doc.doc = doc
	return doc
}

// Doctype returns the content of the distinguished doctype slot, or
// nil when the document has none.
func (d *Document) Doctype() *DocumentType {
	return d.doctype
}

// setDoctype installs dt into the doctype slot. A document holds at
// most one doctype, so a previous occupant is detached first and
// returned so the caller can settle its liveness.
func (d *Document) setDoctype(dt *DocumentType) *DocumentType {
	prev := d.doctype
	if prev == dt {
		return nil
	}
	if prev != nil {
		prev.parent = nil
		d.doctype = nil
	}
	detach(dt)
	d.doctype = dt
	dt.parent = d
	return prev
}

// RootElement returns the first Element among the document's
// top-level children, which for HTML documents is the <html> element.
func (d *Document) RootElement() *Element {
	for e := d.FirstChild(); e != nil; e = e.NextSibling() {
		if e.Type() == ElementNode {
			return e.(*Element)
		}
	}
	return nil
}

func (d *Document) CreateElement(name string) (*Element, error) {
	e := newElement(name)
	e.doc = d
	return e, nil
}

func (d *Document) CreateText(value []byte) (*Text, error) {
	t := newText(value)
	t.doc = d
	return t, nil
}

func (d *Document) CreateComment(value []byte) (*Comment, error) {
	c := newComment(value)
	c.doc = d
	return c, nil
}

func (d *Document) CreateDocumentType(data DoctypeData) (*DocumentType, error) {
	dt := newDocumentType(data)
	dt.doc = d
	return dt, nil
}
