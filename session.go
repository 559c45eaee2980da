package hydrogen

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
)

type SessionState int

const (
	SessionCreated SessionState = iota
	SessionParsing
	SessionCompleted
)

// Session is the per-parse aggregate: one document, one node
// registry, and the quirks-mode/encoding bookkeeping, bound to a
// single tree-construction engine. The engine drives everything; a
// session never initiates work on its own, and it is not safe for
// concurrent use.
type Session struct {
	doc              *Document
	registry         *registry
	state            SessionState
	quirks           QuirksMode
	encoding         string
	strictText       bool
	onEncodingChange func(string)
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		doc:      NewDocument(),
		registry: newRegistry(),
	}
	for _, o := range options {
		switch o.Ident() {
		case identStrictText{}:
			s.strictText = o.Value().(bool)
		case identEncodingChangeHandler{}:
			s.onEncodingChange = o.Value().(func(string))
		}
	}
	return s
}

func (s *Session) Document() *Document { return s.doc }

func (s *Session) State() SessionState { return s.state }

func (s *Session) QuirksMode() QuirksMode { return s.quirks }

// Encoding returns the charset name most recently reported through
// NotifyEncodingChange, or the empty string.
func (s *Session) Encoding() string { return s.encoding }

// LiveNodes returns the number of nodes the registry currently
// accounts for. After Finalize or Close this drops to zero.
func (s *Session) LiveNodes() int { return s.registry.liveCount() }

// begin gates every mutation on the session state machine: the first
// engine call moves Created to Parsing, and anything after Completed
// fails fast.
func (s *Session) begin() error {
	switch s.state {
	case SessionCompleted:
		return ErrSessionCompleted
	case SessionCreated:
		s.state = SessionParsing
	}
	return nil
}

func (s *Session) decodeBytes(what string, b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return b, nil
	}
	if s.strictText {
		return nil, &DecodeError{What: what}
	}
	return bytes.ToValidUTF8(b, []byte(string(utf8.RuneError))), nil
}

func (s *Session) decodeString(what, v string) (string, error) {
	if utf8.ValidString(v) {
		return v, nil
	}
	if s.strictText {
		return "", &DecodeError{What: what}
	}
	return strings.ToValidUTF8(v, string(utf8.RuneError)), nil
}

func (s *Session) decodeAttrs(attrs []Attribute) ([]Attribute, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	out := make([]Attribute, len(attrs))
	for i, attr := range attrs {
		name, err := s.decodeString("attribute name", attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := s.decodeString("attribute value", attr.Value)
		if err != nil {
			return nil, err
		}
		out[i] = Attribute{Name: name, Value: value}
	}
	return out, nil
}

// CreateElement makes a new element with the given tag name and
// attribute sequence. All inputs are validated before the node is
// created, so a failed call leaves the registry untouched; a
// successful call has registered the node before it is returned.
func (s *Session) CreateElement(name string, attrs []Attribute) (*Element, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	name, err := s.decodeString("element name", name)
	if err != nil {
		return nil, err
	}
	attrs, err = s.decodeAttrs(attrs)
	if err != nil {
		return nil, err
	}

	e, err := s.doc.CreateElement(name)
	if err != nil {
		return nil, err
	}
	e.attributes = attrs
	s.registry.register(e)
	return e, nil
}

func (s *Session) CreateText(content []byte) (*Text, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	content, err := s.decodeBytes("text content", content)
	if err != nil {
		return nil, err
	}

	t, err := s.doc.CreateText(content)
	if err != nil {
		return nil, err
	}
	s.registry.register(t)
	return t, nil
}

func (s *Session) CreateComment(content []byte) (*Comment, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	content, err := s.decodeBytes("comment content", content)
	if err != nil {
		return nil, err
	}

	c, err := s.doc.CreateComment(content)
	if err != nil {
		return nil, err
	}
	s.registry.register(c)
	return c, nil
}

func (s *Session) CreateDocumentType(data DoctypeData) (*DocumentType, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	var err error
	if data.Name, err = s.decodeString("doctype name", data.Name); err != nil {
		return nil, err
	}
	if data.PublicID, err = s.decodeString("doctype public identifier", data.PublicID); err != nil {
		return nil, err
	}
	if data.SystemID, err = s.decodeString("doctype system identifier", data.SystemID); err != nil {
		return nil, err
	}

	dt, err := s.doc.CreateDocumentType(data)
	if err != nil {
		return nil, err
	}
	s.registry.register(dt)
	return dt, nil
}

// Ref records one more outstanding engine reference on n. Never
// fails; a nil node is ignored.
func (s *Session) Ref(n Node) {
	s.registry.ref(n)
}

// Unref releases one engine reference on n. A node with no
// outstanding references that is not reachable from the document root
// leaves the live set.
func (s *Session) Unref(n Node) {
	s.registry.unref(n)
}

// SetQuirksMode records the quirks classification. The engine calls
// this at most once per parse, but repeated calls simply overwrite.
func (s *Session) SetQuirksMode(mode QuirksMode) {
	s.quirks = mode
}

// NotifyEncodingChange records the new charset name and surfaces it
// to the registered handler, if any. Text already in the tree is not
// re-decoded; restarting the parse with a corrected encoding is the
// caller's decision.
func (s *Session) NotifyEncodingChange(name string) {
	if pdebug.Enabled {
		pdebug.Printf("encoding change reported: %s", name)
	}
	s.encoding = name
	if h := s.onEncodingChange; h != nil {
		h(name)
	}
}

// FormAssociate is the hook for form-association bookkeeping. The
// tree itself needs none, so this does nothing, but the engine needs
// a callback target.
func (s *Session) FormAssociate(form, node Node) {}

// Finalize transitions the session to Completed, drops the transient
// reference-count bookkeeping, and hands back the finished document.
// Nodes still in the tree stay alive through the document itself.
func (s *Session) Finalize() (*Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if s.state == SessionCompleted {
		return nil, ErrSessionCompleted
	}
	s.state = SessionCompleted
	s.registry.purge()
	return s.doc, nil
}

// Close abandons the session, deterministically releasing every node
// the registry still accounts for. Safe to call on an already
// completed session.
func (s *Session) Close() error {
	s.state = SessionCompleted
	s.registry.purge()
	return nil
}
