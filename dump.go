package hydrogen

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// DumpDoc serializes the whole document, doctype slot first, as HTML
// text.
func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if dt := doc.Doctype(); dt != nil {
		if err := d.DumpNode(out, dt); err != nil {
			return err
		}
	}
	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		if err := d.DumpNode(out, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) DumpNode(out io.Writer, n Node) error {
	switch n := n.(type) {
	case *Text:
		return d.writeString(out, html.EscapeString(string(n.Content())))
	case *Comment:
		return d.writeString(out, "<!--"+string(n.Content())+"-->")
	case *DocumentType:
		return d.dumpDoctype(out, n)
	case *Document:
		return d.DumpDoc(out, n)
	case *Element:
		return d.dumpElement(out, n)
	}
	return ErrInvalidOperation
}

func (d *Dumper) dumpDoctype(out io.Writer, dt *DocumentType) error {
	s := "<!DOCTYPE " + dt.Name()
	if public, ok := dt.PublicID(); ok {
		s += ` PUBLIC "` + public + `"`
		if system, ok := dt.SystemID(); ok {
			s += ` "` + system + `"`
		}
	} else if system, ok := dt.SystemID(); ok {
		s += ` SYSTEM "` + system + `"`
	}
	return d.writeString(out, s+">")
}

func (d *Dumper) dumpElement(out io.Writer, e *Element) error {
	s := "<" + e.Name()
	for _, attr := range e.Attributes() {
		s += " " + attr.Name + `="` + html.EscapeString(attr.Value) + `"`
	}
	s += ">"
	if err := d.writeString(out, s); err != nil {
		return err
	}

	if _, void := voidElements[e.Name()]; void {
		return nil
	}
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		if err := d.DumpNode(out, c); err != nil {
			return err
		}
	}
	return d.writeString(out, "</"+e.Name()+">")
}

// DumpTree renders the document structure as an indented tree, which
// is easier to eyeball than serialized HTML when debugging engine
// output.
func (d *Dumper) DumpTree(out io.Writer, doc *Document) error {
	tree := treeprint.New()
	tree.SetValue(doc.Name())
	if dt := doc.Doctype(); dt != nil {
		tree.AddNode(nodeLabel(dt))
	}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		d.addTreeNode(tree, c)
	}
	_, err := io.WriteString(out, tree.String())
	return err
}

func (d *Dumper) addTreeNode(tree treeprint.Tree, n Node) {
	if n.FirstChild() == nil {
		tree.AddNode(nodeLabel(n))
		return
	}
	branch := tree.AddBranch(nodeLabel(n))
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		d.addTreeNode(branch, c)
	}
}

func nodeLabel(n Node) string {
	switch n := n.(type) {
	case *Text:
		return fmt.Sprintf("%q", string(n.Content()))
	case *Comment:
		return "<!-- " + string(n.Content()) + " -->"
	case *DocumentType:
		return "<!DOCTYPE " + n.Name() + ">"
	case *Element:
		if attrs := n.Attributes(); len(attrs) > 0 {
			pairs := make([]string, len(attrs))
			for i, attr := range attrs {
				pairs[i] = attr.Name + `="` + attr.Value + `"`
			}
			return "<" + n.Name() + " " + strings.Join(pairs, " ") + ">"
		}
	}
	return "<" + n.Name() + ">"
}
