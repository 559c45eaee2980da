package hydrogen

func newDocumentType(data DoctypeData) *DocumentType {
	dt := DocumentType{
		publicID:    data.PublicID,
		systemID:    data.SystemID,
		hasPublicID: data.HasPublicID,
		hasSystemID: data.HasSystemID,
	}
	dt.typ = DocumentTypeNode
	dt.name = data.Name
	return &dt
}

// PublicID returns the public identifier. The second return value
// distinguishes a missing identifier from an empty one.
func (n *DocumentType) PublicID() (string, bool) {
	return n.publicID, n.hasPublicID
}

func (n *DocumentType) SystemID() (string, bool) {
	return n.systemID, n.hasSystemID
}

// Doctypes are leaves in this model, so a doctype clone is always
// shallow regardless of what the caller asked for.
func (n *DocumentType) clone() *DocumentType {
	dt := newDocumentType(DoctypeData{
		Name:        n.name,
		PublicID:    n.publicID,
		SystemID:    n.systemID,
		HasPublicID: n.hasPublicID,
		HasSystemID: n.hasSystemID,
	})
	dt.doc = n.doc
	return dt
}
