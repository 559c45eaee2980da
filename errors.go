package hydrogen

// DecodeError is returned by node-creation calls when their input is
// not valid UTF-8 and the session was configured for strict text
// handling. The registry is left untouched when this is returned.
type DecodeError struct {
	What string // which input was malformed, e.g. "element name"
}

func (e *DecodeError) Error() string {
	return "malformed UTF-8 in " + e.What
}

// ReferenceNotFoundError is returned when a mutation names a child or
// reference node that is not actually a child of the claimed parent.
// The engine only ever references existing children, so this signals
// an internal-consistency violation and should abort the parse.
type ReferenceNotFoundError struct {
	Op string
}

func (e *ReferenceNotFoundError) Error() string {
	return e.Op + ": node is not a child of the given parent"
}
