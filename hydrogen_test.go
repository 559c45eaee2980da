package hydrogen_test

import (
	"testing"

	"github.com/lestrrat-go/hydrogen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalDocument(t *testing.T) {
	doc, err := hydrogen.Parse([]byte(`<html><body>Hi</body></html>`))
	if !assert.NoError(t, err, "Parse(...) succeeds") {
		return
	}

	root := doc.RootElement()
	require.NotNil(t, root, "document has a root element")
	require.Equal(t, "html", root.Name())

	body := root.FirstChild()
	require.NotNil(t, body, "html has one child")
	require.Equal(t, "body", body.Name())
	require.Nil(t, body.NextSibling())

	text := body.FirstChild()
	require.NotNil(t, text, "body contains one text node")
	require.Equal(t, hydrogen.TextNode, text.Type())
	require.Equal(t, []byte("Hi"), text.Content())
	require.Nil(t, text.NextSibling())
}

// The same document, driven by the scripted call sequence a
// tree-construction algorithm would emit against the handler surface.
func TestScriptedConstruction(t *testing.T) {
	s := hydrogen.NewSession()
	doc := s.Document()

	html, err := s.CreateElement("html", nil)
	require.NoError(t, err)
	_, err = s.Append(doc, html)
	require.NoError(t, err)
	s.Unref(html)

	body, err := s.CreateElement("body", nil)
	require.NoError(t, err)
	_, err = s.Append(html, body)
	require.NoError(t, err)
	s.Unref(body)

	text, err := s.CreateText([]byte("Hi"))
	require.NoError(t, err)
	_, err = s.Append(body, text)
	require.NoError(t, err)
	s.Unref(text)

	got, err := s.Finalize()
	require.NoError(t, err, "Finalize succeeds")
	require.Equal(t, doc, got)

	root := got.RootElement()
	require.Equal(t, "html", root.Name())
	require.Equal(t, "body", root.FirstChild().Name())
	require.Equal(t, []byte("Hi"), root.FirstChild().FirstChild().Content())
	require.Zero(t, s.LiveNodes())
}

func TestParseChunked(t *testing.T) {
	p := hydrogen.NewParser()
	for _, chunk := range []string{"<html><bo", "dy><p>chun", "ked</p></body></html>"} {
		require.NoError(t, p.FeedChunk([]byte(chunk)), "FeedChunk succeeds")
	}
	doc, err := p.Complete()
	require.NoError(t, err, "Complete succeeds")

	body := doc.RootElement().FirstChild()
	require.Equal(t, "body", body.Name())
	require.Equal(t, []byte("chunked"), body.Content(), "token split across chunks survives")
}

func TestParseDoctypeAndQuirks(t *testing.T) {
	data := map[string]struct {
		input      string
		mode       hydrogen.QuirksMode
		hasDoctype bool
	}{
		"modern": {
			`<!DOCTYPE html><html></html>`,
			hydrogen.QuirksModeNone,
			true,
		},
		"missing doctype": {
			`<html></html>`,
			hydrogen.QuirksModeFull,
			false,
		},
		"legacy 3.2": {
			`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 3.2 Final//EN"><html></html>`,
			hydrogen.QuirksModeFull,
			true,
		},
		"xhtml transitional": {
			`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"><html></html>`,
			hydrogen.QuirksModeLimited,
			true,
		},
	}

	for name, tc := range data {
		t.Run(name, func(t *testing.T) {
			s := hydrogen.NewSession()
			p := hydrogen.NewParser(hydrogen.WithTreeHandler(s))
			require.NoError(t, p.FeedChunk([]byte(tc.input)))
			doc, err := p.Complete()
			require.NoError(t, err, "Complete succeeds")
			require.Equal(t, tc.mode, s.QuirksMode())

			if tc.hasDoctype {
				dt := doc.Doctype()
				require.NotNil(t, dt, "doctype installed in the slot")
				require.Equal(t, "html", dt.Name())
				require.Nil(t, doc.FirstChild().PrevSibling(), "doctype is not among the ordinary children")
			} else {
				require.Nil(t, doc.Doctype())
			}
		})
	}
}

func TestParseAttributesAndComments(t *testing.T) {
	doc, err := hydrogen.Parse([]byte(`<html><!-- greeting --><body class="main" id="top">Hi<br>there</body></html>`))
	require.NoError(t, err, "Parse succeeds")

	root := doc.RootElement()
	comment := root.FirstChild()
	require.Equal(t, hydrogen.CommentNode, comment.Type())
	require.Equal(t, []byte(" greeting "), comment.Content())

	body := comment.NextSibling().(*hydrogen.Element)
	require.Equal(t, []hydrogen.Attribute{
		{Name: "class", Value: "main"},
		{Name: "id", Value: "top"},
	}, body.Attributes())

	// void elements never open a scope
	var names []string
	for c := body.FirstChild(); c != nil; c = c.NextSibling() {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"(text)", "br", "(text)"}, names)
	require.False(t, body.FirstChild().NextSibling().FirstChild() != nil, "br has no children")
}

func TestParseWithEncoding(t *testing.T) {
	// "café" in ISO-8859-1
	input := []byte("<html><body>caf\xe9</body></html>")

	doc, err := hydrogen.Parse(input, hydrogen.WithEncoding("iso-8859-1"))
	require.NoError(t, err, "Parse succeeds")
	require.Equal(t, []byte("café"), doc.RootElement().FirstChild().Content())

	_, err = hydrogen.Parse(input, hydrogen.WithEncoding("no-such-charset"))
	require.Error(t, err, "unknown encoding is reported")
}

func TestParseMetaCharsetNotification(t *testing.T) {
	var got []string
	_, err := hydrogen.Parse(
		[]byte(`<html><head><meta charset="shift_jis"></head></html>`),
		hydrogen.WithEncodingChangeHandler(func(name string) {
			got = append(got, name)
		}),
	)
	require.NoError(t, err, "Parse succeeds")
	require.Equal(t, []string{"shift_jis"}, got, "encoding change surfaced to the caller")
}
