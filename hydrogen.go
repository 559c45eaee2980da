// Package hydrogen implements the tree side of HTML parsing: a
// document-object tree, a per-parse session that owns it, and the
// handler surface a tree-construction engine drives to build it. The
// bundled engine tokenizes with golang.org/x/net/html; callers that
// bring their own engine talk to a Session (or any TreeHandler)
// directly.
package hydrogen

const Version = "0.1.0"

// Parse feeds data through the bundled engine in one shot and
// returns the finished document.
func Parse(data []byte, options ...ParseOption) (*Document, error) {
	p := NewParser(options...)
	if err := p.FeedChunk(data); err != nil {
		return nil, err
	}
	return p.Complete()
}
