package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification. Every error returned by this
// package wraps exactly one of them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
)

// Error describes a failed construction or lookup.
type Error struct {
	Op   string // new, has, get, validate, check, load
	Kind ErrorKind
	Term string   // normalised term, when one is known
	Keys []string // raw keys involved in a strip-collision
	Msg  string
	Err  error // underlying cause, e.g. a decoder error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.sentinel().Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	} else if e.Term != "" {
		fmt.Fprintf(&b, ": %q", e.Term)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the sentinel matching the error's kind, followed by the
// underlying cause if there is one.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err != nil {
		return []error{e.sentinel(), e.Err}
	}
	return []error{e.sentinel()}
}

func (e *Error) sentinel() error {
	if e.Kind == KindNotFound {
		return ErrNotFound
	}
	return ErrInvalidInput
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind == kind
	}
	return false
}

func invalidf(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func notFound(op, term string) *Error {
	return &Error{Op: op, Kind: KindNotFound, Term: term}
}
