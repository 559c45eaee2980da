package hydrogen

import "errors"

var (
	ErrNilNode          = errors.New("nil node")
	ErrInvalidOperation = errors.New("operation cannot be performed")
	ErrSessionCompleted = errors.New("session already completed")
)

// common data shared by every node variant. Mutation of the link
// fields goes through the package-level helpers in node.go so that
// the single-parent invariant is maintained in exactly one place.
type docnode struct {
	typ        NodeType
	name       string
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
}

type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentTypeNode
	DocumentNode
)

// hydrogen.Node is the read-only surface of a node in the tree.
// Structural edits go through a Session, which owns the registry
// that accounts for node liveness.
type Node interface {
	Type() NodeType
	Name() string
	Content() []byte
	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	OwnerDocument() *Document

	getNode() *docnode
}

type Element struct {
	docnode
	attributes []Attribute
}

type Text struct {
	docnode
	content []byte
}

type Comment struct {
	docnode
	content []byte
}

// DocumentType carries the doctype name and its external identifiers.
// A missing identifier is distinct from an empty one, hence the
// explicit presence flags.
type DocumentType struct {
	docnode
	publicID    string
	systemID    string
	hasPublicID bool
	hasSystemID bool
}

// Document is the root of the tree. The doctype occupies a
// distinguished slot and is not part of the ordinary child sequence.
type Document struct {
	docnode
	doctype *DocumentType
}

// DoctypeData is the structured input to CreateDocumentType.
type DoctypeData struct {
	Name        string
	PublicID    string
	SystemID    string
	HasPublicID bool
	HasSystemID bool
}

// TreeHandler is the surface a tree-construction engine drives. The
// bundled engine only ever talks to this interface, so callers may
// substitute their own handler to intercept or record the mutation
// stream. *Session implements it.
type TreeHandler interface {
	Document() *Document

	CreateElement(name string, attrs []Attribute) (*Element, error)
	CreateText(content []byte) (*Text, error)
	CreateComment(content []byte) (*Comment, error)
	CreateDocumentType(data DoctypeData) (*DocumentType, error)

	Append(parent, child Node) (Node, error)
	InsertBefore(parent, child, ref Node) (Node, error)
	RemoveChild(parent, child Node) (Node, error)
	Clone(n Node, deep bool) (Node, error)
	ReparentChildren(n, newParent Node) error
	AddAttributes(n Node, attrs []Attribute) error

	GetParent(n Node, elementOnly bool) Node
	HasChildren(n Node) bool

	Ref(n Node)
	Unref(n Node)

	SetQuirksMode(mode QuirksMode)
	NotifyEncodingChange(name string)
	FormAssociate(form, node Node)

	Finalize() (*Document, error)
}
