package builder

import (
	"fmt"
	"maps"
	"slices"

	"github.com/comalice/lexicon" // the core package
)

// Option adds entries to a lexicon under construction.
type Option func(b *lexicon.Builder)

// Term adds a single term and definition.
func Term(term, definition string) Option {
	return func(b *lexicon.Builder) {
		b.Add(term, definition)
	}
}

// Entries adds entries in the given order.
func Entries(entries ...lexicon.Entry) Option {
	return func(b *lexicon.Builder) {
		b.AddEntries(entries...)
	}
}

// Map adds every pair of m, sorted by raw key.
func Map(m map[string]string) Option {
	return func(b *lexicon.Builder) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			b.Add(k, m[k])
		}
	}
}

// New applies opts in order and builds the lexicon.
func New(opts ...Option) (*lexicon.Lexicon, error) {
	b := lexicon.NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Pairs builds a lexicon from alternating term/definition arguments.
func Pairs(kv ...string) (*lexicon.Lexicon, error) {
	if len(kv)%2 != 0 {
		return nil, &lexicon.Error{
			Op:   "new",
			Kind: lexicon.KindInvalidInput,
			Msg:  fmt.Sprintf("odd number of arguments (%d): term %q has no definition", len(kv), kv[len(kv)-1]),
		}
	}
	b := lexicon.NewBuilder()
	for i := 0; i < len(kv); i += 2 {
		b.Add(kv[i], kv[i+1])
	}
	return b.Build()
}

// Must panics if err is non-nil. Intended for package-level tables that are
// known to be valid.
func Must(lx *lexicon.Lexicon, err error) *lexicon.Lexicon {
	if err != nil {
		panic(err)
	}
	return lx
}
