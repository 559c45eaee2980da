package hydrogen

// registry tracks the set of live nodes created during one parse and
// the number of outstanding references the engine holds on each. Go's
// garbage collector owns the memory; what the registry owns is the
// observable liveness contract: a node stays accounted for while a
// tree edge still points to it or while the engine still holds a
// reference, and the live count drops to zero when a session is
// finalized or abandoned.
type registry struct {
	refs map[Node]int
}

func newRegistry() *registry {
	return &registry{refs: make(map[Node]int)}
}

// register enters n into the live set with one reference attributed
// to the caller that asked for its creation.
func (r *registry) register(n Node) {
	r.refs[n] = 1
}

func (r *registry) ref(n Node) {
	if n == nil {
		return
	}
	r.refs[n]++
}

func (r *registry) unref(n Node) {
	if n == nil {
		return
	}
	c, ok := r.refs[n]
	if !ok {
		return
	}
	c--
	if c > 0 {
		r.refs[n] = c
		return
	}
	r.refs[n] = 0
	if n.Parent() == nil {
		r.collect(n)
	}
}

// collect evicts n and any registered descendant with no outstanding
// references. Descendants the engine still holds stay in the live set
// even though their subtree root is gone.
func (r *registry) collect(n Node) {
	Walk(n, func(cur Node) error {
		if c, ok := r.refs[cur]; ok && c <= 0 {
			delete(r.refs, cur)
		}
		return nil
	})
}

// settle re-checks the liveness rule for a node that just became
// detached, e.g. a doctype displaced from its slot.
func (r *registry) settle(n Node) {
	if n == nil {
		return
	}
	if c, ok := r.refs[n]; ok && c <= 0 && n.Parent() == nil {
		r.collect(n)
	}
}

func (r *registry) liveCount() int {
	return len(r.refs)
}

func (r *registry) purge() {
	r.refs = make(map[Node]int)
}
