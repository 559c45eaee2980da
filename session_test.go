package hydrogen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateMachine(t *testing.T) {
	s := NewSession()
	require.Equal(t, SessionCreated, s.State())

	e, err := s.CreateElement("html", nil)
	require.NoError(t, err, "CreateElement succeeds")
	require.Equal(t, SessionParsing, s.State(), "first engine call starts the parse")

	_, err = s.Append(s.Document(), e)
	require.NoError(t, err, "Append succeeds")

	doc, err := s.Finalize()
	require.NoError(t, err, "Finalize succeeds")
	require.Equal(t, s.Document(), doc)
	require.Equal(t, SessionCompleted, s.State())

	// after completion, mutations fail fast
	_, err = s.CreateElement("div", nil)
	require.ErrorIs(t, err, ErrSessionCompleted)
	_, err = s.Append(doc, e)
	require.ErrorIs(t, err, ErrSessionCompleted)
	_, err = s.Finalize()
	require.ErrorIs(t, err, ErrSessionCompleted, "Finalize is once only")
}

func TestFinalizeDropsBookkeeping(t *testing.T) {
	s := NewSession()
	doc := s.Document()
	e, err := s.CreateElement("html", nil)
	require.NoError(t, err)
	_, err = s.Append(doc, e)
	require.NoError(t, err)

	require.NotZero(t, s.LiveNodes())
	_, err = s.Finalize()
	require.NoError(t, err)
	require.Zero(t, s.LiveNodes(), "transient bookkeeping released")

	// the tree itself survives its bookkeeping
	require.Equal(t, e, doc.RootElement())
}

func TestSessionCloseReleasesPartialTree(t *testing.T) {
	s := NewSession()
	doc := s.Document()

	html, err := s.CreateElement("html", nil)
	require.NoError(t, err)
	_, err = s.Append(doc, html)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		e, err := s.CreateElement("div", nil)
		require.NoError(t, err)
		_, err = s.Append(html, e)
		require.NoError(t, err)
	}
	// and one node the engine never attached anywhere
	_, err = s.CreateComment([]byte("dangling"))
	require.NoError(t, err)

	require.Equal(t, 7, s.LiveNodes())
	require.NoError(t, s.Close(), "abandoning mid-parse succeeds")
	require.Zero(t, s.LiveNodes(), "every created node is released")
	require.Equal(t, SessionCompleted, s.State())
}

func TestRefUnref(t *testing.T) {
	s := NewSession()
	doc := s.Document()

	html, err := s.CreateElement("html", nil)
	require.NoError(t, err)
	_, err = s.Append(doc, html)
	require.NoError(t, err)

	// attached node: releasing the engine reference keeps it alive,
	// the tree edge still points to it
	s.Unref(html)
	require.Equal(t, 1, s.LiveNodes())

	// detached node: dropping the last reference evicts it
	orphan, err := s.CreateElement("div", nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.LiveNodes())
	s.Unref(orphan)
	require.Equal(t, 1, s.LiveNodes())

	// extra references hold a detached node
	held, err := s.CreateElement("span", nil)
	require.NoError(t, err)
	s.Ref(held)
	s.Unref(held)
	require.Equal(t, 2, s.LiveNodes(), "still one engine reference outstanding")
	s.Unref(held)
	require.Equal(t, 1, s.LiveNodes())

	// never fails, even on nil
	s.Ref(nil)
	s.Unref(nil)
}

func TestUnrefCollectsDetachedSubtree(t *testing.T) {
	s := NewSession()

	root, err := s.CreateElement("div", nil)
	require.NoError(t, err)
	child, err := s.CreateElement("p", nil)
	require.NoError(t, err)
	txt, err := s.CreateText([]byte("x"))
	require.NoError(t, err)
	_, err = s.Append(root, child)
	require.NoError(t, err)
	_, err = s.Append(child, txt)
	require.NoError(t, err)
	s.Unref(child)
	s.Unref(txt)
	require.Equal(t, 3, s.LiveNodes(), "edge-held descendants stay accounted for")

	// dropping the subtree root takes the dead descendants with it
	s.Unref(root)
	require.Zero(t, s.LiveNodes())
}

func TestStrictText(t *testing.T) {
	bad := []byte{'a', 0xff, 'b'}

	s := NewSession(WithStrictText(true))
	before := s.LiveNodes()
	_, err := s.CreateText(bad)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr, "strict session rejects malformed UTF-8")
	require.Equal(t, before, s.LiveNodes(), "failed creation leaves the registry untouched")

	_, err = s.CreateElement(string(bad), nil)
	require.ErrorAs(t, err, &decErr, "element names are validated too")
	_, err = s.CreateElement("div", []Attribute{{Name: "id", Value: string(bad)}})
	require.ErrorAs(t, err, &decErr, "attribute values are validated too")

	// the default is permissive replacement
	s2 := NewSession()
	txt, err := s2.CreateText(bad)
	require.NoError(t, err, "permissive session substitutes")
	require.Equal(t, "a�b", string(txt.Content()))
}

func TestQuirksMode(t *testing.T) {
	s := NewSession()
	require.Equal(t, QuirksModeNone, s.QuirksMode())

	s.SetQuirksMode(QuirksModeFull)
	require.Equal(t, QuirksModeFull, s.QuirksMode())

	// called at most once per parse by contract, but repeated calls
	// simply overwrite
	s.SetQuirksMode(QuirksModeLimited)
	require.Equal(t, QuirksModeLimited, s.QuirksMode())
}

func TestNotifyEncodingChange(t *testing.T) {
	var got []string
	s := NewSession(WithEncodingChangeHandler(func(name string) {
		got = append(got, name)
	}))

	s.NotifyEncodingChange("shift_jis")
	assert.Equal(t, "shift_jis", s.Encoding())
	assert.Equal(t, []string{"shift_jis"}, got)

	// informational only: nothing already built is re-decoded
	s.NotifyEncodingChange("euc-jp")
	assert.Equal(t, "euc-jp", s.Encoding())
	assert.Equal(t, []string{"shift_jis", "euc-jp"}, got)
}

func TestFormAssociate(t *testing.T) {
	s := NewSession()
	form, err := s.CreateElement("form", nil)
	require.NoError(t, err)
	input, err := s.CreateElement("input", nil)
	require.NoError(t, err)

	// a deliberate no-op, but the callback target must exist
	s.FormAssociate(form, input)
	s.FormAssociate(nil, nil)
}
