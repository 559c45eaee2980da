package hydrogen

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identEncodingChangeHandler struct{}
type identStrictText struct{}
type identTreeHandler struct{}

// SessionOption is an option that can be passed to NewSession
type SessionOption interface {
	Option
	sessionOption()
}

// ParseOption is an option that can be passed to NewParser or Parse
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// sessionParseOption is accepted by both NewSession and NewParser;
// the parser forwards it to the session it creates.
type sessionParseOption struct{ Option }

func (*sessionParseOption) sessionOption() {}
func (*sessionParseOption) parseOption()   {}

// WithStrictText makes node-creation calls fail with a DecodeError on
// malformed UTF-8 input instead of substituting the replacement rune.
func WithStrictText(v bool) interface {
	SessionOption
	ParseOption
} {
	return &sessionParseOption{option.New(identStrictText{}, v)}
}

// WithEncodingChangeHandler registers a callback invoked whenever the
// engine reports a character-encoding change. The tree already built
// is not re-decoded; acting on the new name is the caller's decision.
func WithEncodingChangeHandler(v func(string)) interface {
	SessionOption
	ParseOption
} {
	return &sessionParseOption{option.New(identEncodingChangeHandler{}, v)}
}

// WithEncoding specifies the character encoding of the input, which
// is transcoded to UTF-8 before tokenization.
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithTreeHandler substitutes the handler the engine drives in place
// of a freshly created Session.
func WithTreeHandler(v TreeHandler) ParseOption {
	return &parseOption{option.New(identTreeHandler{}, v)}
}
