package hydrogen

import (
	"bytes"
	"io"
	"strings"

	"github.com/lestrrat-go/hydrogen/encoding"
	"github.com/lestrrat-go/hydrogen/internal/stack"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/text/transform"
)

// Parser is the bundled tree-construction engine: it buffers raw
// input chunks and, on completion, tokenizes them with x/net/html and
// drives a TreeHandler through the resulting mutation stream. It is
// deliberately simple -- tokenization is delegated wholesale, and no
// HTML5 error-recovery beyond what the tokenizer itself does is
// attempted. A Parser runs one parse and is then spent.
type Parser struct {
	buf       bytes.Buffer
	encoding  string
	handler   TreeHandler
	completed bool
}

func NewParser(options ...ParseOption) *Parser {
	var p Parser
	var sopts []SessionOption
	for _, o := range options {
		switch o.Ident() {
		case identEncoding{}:
			p.encoding = o.Value().(string)
		case identTreeHandler{}:
			p.handler = o.Value().(TreeHandler)
		default:
			if so, ok := o.(SessionOption); ok {
				sopts = append(sopts, so)
			}
		}
	}
	if p.handler == nil {
		p.handler = NewSession(sopts...)
	}
	return &p
}

// FeedChunk accepts the next chunk of raw input. Chunks are buffered
// as-is; nothing is tokenized until Complete.
func (p *Parser) FeedChunk(b []byte) error {
	if p.completed {
		return ErrSessionCompleted
	}
	_, err := p.buf.Write(b)
	return err
}

// Complete runs the buffered input through tokenization and tree
// construction, then finalizes the handler and returns the finished
// document. A failed parse yields no usable document; the partially
// built tree is discarded.
func (p *Parser) Complete() (*Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if p.completed {
		return nil, ErrSessionCompleted
	}
	p.completed = true

	var r io.Reader = bytes.NewReader(p.buf.Bytes())
	if p.encoding != "" {
		e := encoding.Load(p.encoding)
		if e == nil {
			return nil, errors.New("unknown encoding: " + p.encoding)
		}
		r = transform.NewReader(r, e.NewDecoder())
	}

	if err := p.construct(r); err != nil {
		if c, ok := p.handler.(interface{ Close() error }); ok {
			c.Close()
		}
		return nil, errors.Wrap(err, "failed to parse document")
	}

	return p.handler.Finalize()
}

// Elements whose start tag never opens a scope.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "basefont": {}, "bgsound": {}, "br": {},
	"col": {}, "embed": {}, "frame": {}, "hr": {}, "img": {},
	"input": {}, "keygen": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

func (p *Parser) construct(r io.Reader) error {
	h := p.handler
	doc := h.Document()

	// The engine keeps its creation reference on an element for as
	// long as the element is on the open stack; everything else is
	// released as soon as it has been attached.
	var open stack.Stack[*Element]
	target := func() Node {
		if e, ok := open.Peek(); ok {
			return e
		}
		return Node(doc)
	}

	sawDoctype := false
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			for {
				e, ok := open.Pop()
				if !ok {
					break
				}
				h.Unref(e)
			}
			if !sawDoctype {
				h.SetQuirksMode(QuirksModeFull)
			}
			return nil

		case html.TextToken:
			t := z.Token()
			n, err := h.CreateText([]byte(t.Data))
			if err != nil {
				return err
			}
			if _, err := h.Append(target(), n); err != nil {
				return err
			}
			h.Unref(n)

		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			attrs := convertAttrs(t.Attr)
			e, err := h.CreateElement(t.Data, attrs)
			if err != nil {
				return err
			}
			if _, err := h.Append(target(), e); err != nil {
				return err
			}
			if t.Data == "meta" {
				if cs := metaCharset(attrs); cs != "" {
					h.NotifyEncodingChange(cs)
				}
			}
			_, void := voidElements[t.Data]
			if tt == html.StartTagToken && !void {
				open.Push(e)
			} else {
				h.Unref(e)
			}

		case html.EndTagToken:
			t := z.Token()
			// Pop to the nearest matching open element. A stray end
			// tag with no match is dropped on the floor, which is as
			// much recovery as this engine does.
			idx := -1
			for i := open.Len() - 1; i >= 0; i-- {
				if open[i].Name() == t.Data {
					idx = i
					break
				}
			}
			for idx >= 0 && open.Len() > idx {
				e, _ := open.Pop()
				h.Unref(e)
			}

		case html.CommentToken:
			t := z.Token()
			n, err := h.CreateComment([]byte(t.Data))
			if err != nil {
				return err
			}
			if _, err := h.Append(target(), n); err != nil {
				return err
			}
			h.Unref(n)

		case html.DoctypeToken:
			t := z.Token()
			data := parseDoctype(t.Data)
			dt, err := h.CreateDocumentType(data)
			if err != nil {
				return err
			}
			if _, err := h.Append(doc, dt); err != nil {
				return err
			}
			h.Unref(dt)
			h.SetQuirksMode(QuirksModeOf(data))
			sawDoctype = true
		}
	}
}

func convertAttrs(in []html.Attribute) []Attribute {
	if len(in) == 0 {
		return nil
	}
	out := make([]Attribute, len(in))
	for i, attr := range in {
		out[i] = Attribute{Name: attr.Key, Value: attr.Val}
	}
	return out
}

const whitespace = " \t\r\n\f"

// parseDoctype splits the raw text of a doctype token into its name
// and optional public/system identifiers, keeping presence distinct
// from emptiness.
func parseDoctype(str string) DoctypeData {
	var d DoctypeData
	str = strings.Trim(str, whitespace)
	space := strings.IndexAny(str, whitespace)
	if space == -1 {
		space = len(str)
	}
	d.Name = str[:space]
	str = strings.TrimLeft(str[space:], whitespace)
	if len(str) < 6 {
		return d
	}

	key := strings.ToLower(str[:6])
	str = str[6:]
	for key == "public" || key == "system" {
		str = strings.TrimLeft(str, whitespace)
		if str == "" {
			break
		}
		quote := str[0]
		if quote != '"' && quote != '\'' {
			break
		}
		str = str[1:]
		q := strings.IndexByte(str, quote)
		var id string
		if q == -1 {
			id, str = str, ""
		} else {
			id, str = str[:q], str[q+1:]
		}
		if key == "public" {
			d.PublicID = id
			d.HasPublicID = true
			key = "system"
		} else {
			d.SystemID = id
			d.HasSystemID = true
			break
		}
	}
	return d
}

// metaCharset extracts a charset declaration from a <meta> element's
// attributes, either the charset attribute itself or the legacy
// http-equiv content-type form.
func metaCharset(attrs []Attribute) string {
	var httpEquiv, content string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name) {
		case "charset":
			return strings.TrimSpace(attr.Value)
		case "http-equiv":
			httpEquiv = strings.ToLower(attr.Value)
		case "content":
			content = attr.Value
		}
	}
	if httpEquiv != "content-type" {
		return ""
	}
	lower := strings.ToLower(content)
	i := strings.Index(lower, "charset=")
	if i == -1 {
		return ""
	}
	cs := strings.TrimSpace(content[i+len("charset="):])
	if j := strings.IndexAny(cs, "; "); j != -1 {
		cs = cs[:j]
	}
	return strings.Trim(cs, `"'`)
}
