package lexicon

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Entry is a single term and its definition.
type Entry struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// Lexicon is an immutable mapping from normalised terms to definitions.
// The zero value and a nil *Lexicon both behave as an empty lexicon.
type Lexicon struct {
	entries []Entry        // construction order
	index   map[string]int // term -> position in entries
}

// New builds a Lexicon from entries, keeping their order.
// It fails with ErrInvalidInput if any term or definition is empty after
// trimming, or if two raw terms trim to the same string. No partial Lexicon
// is ever returned.
func New(entries ...Entry) (*Lexicon, error) {
	return build("new", entries)
}

// FromMap builds a Lexicon from a plain map. Raw keys are processed in sorted
// order so that both the resulting order and any collision error are
// deterministic.
func FromMap(m map[string]string) (*Lexicon, error) {
	entries := make([]Entry, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, Entry{Term: k, Definition: m[k]})
	}
	return build("new", entries)
}

// FromAny builds a Lexicon from untyped data, such as the result of decoding
// a document into an interface value. Only string-to-string shapes are
// accepted.
func FromAny(v any) (*Lexicon, error) {
	switch pairs := v.(type) {
	case map[string]string:
		return FromMap(pairs)
	case []Entry:
		return New(pairs...)
	case map[string]any:
		entries := make([]Entry, 0, len(pairs))
		for _, k := range slices.Sorted(maps.Keys(pairs)) {
			s, ok := pairs[k].(string)
			if !ok {
				return nil, invalidf("new", "value for %q must be a string, got %T", k, pairs[k])
			}
			entries = append(entries, Entry{Term: k, Definition: s})
		}
		return build("new", entries)
	case map[any]any:
		keys := slices.SortedFunc(maps.Keys(pairs), func(a, b any) int {
			if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
				return c
			}
			return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
		})
		entries := make([]Entry, 0, len(pairs))
		for _, k := range keys {
			ks, ok := k.(string)
			if !ok {
				return nil, invalidf("new", "keys must be strings, got %T", k)
			}
			s, ok := pairs[k].(string)
			if !ok {
				return nil, invalidf("new", "value for %q must be a string, got %T", ks, pairs[k])
			}
			entries = append(entries, Entry{Term: ks, Definition: s})
		}
		return build("new", entries)
	default:
		return nil, invalidf("new", "pairs must be a string-to-string mapping, got %T", v)
	}
}

// build normalises and validates entries into a fresh Lexicon.
func build(op string, entries []Entry) (*Lexicon, error) {
	out := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		term := normalize(e.Term)
		if term == "" {
			return nil, invalidf(op, "terms must not be empty or whitespace-only")
		}
		def := normalize(e.Definition)
		if def == "" {
			return nil, invalidf(op, "definition for %q must not be empty or whitespace-only", term)
		}
		if i, exists := index[term]; exists {
			// out and entries stay aligned until the first failure.
			prev := entries[i].Term
			msg := fmt.Sprintf("strip-collision: %q normalises to %q which already exists as %q", e.Term, term, prev)
			if prev == e.Term {
				msg = fmt.Sprintf("duplicate term %q", term)
			}
			return nil, &Error{Op: op, Kind: KindInvalidInput, Term: term, Keys: []string{prev, e.Term}, Msg: msg}
		}
		index[term] = len(out)
		out = append(out, Entry{Term: term, Definition: def})
	}

	return &Lexicon{entries: out, index: index}, nil
}

// Has reports whether term, once trimmed, is in the lexicon.
// A missing term is not an error.
func (l *Lexicon) Has(term string) (bool, error) {
	key, err := checkTerm("has", term)
	if err != nil {
		return false, err
	}
	if l == nil {
		return false, nil
	}
	_, ok := l.index[key]
	return ok, nil
}

// Get returns the definition stored for term.
func (l *Lexicon) Get(term string) (string, error) {
	i, err := l.find("get", term)
	if err != nil {
		return "", err
	}
	return l.entries[i].Definition, nil
}

// Validate returns the normalised form of term if it is in the lexicon.
func (l *Lexicon) Validate(term string) (string, error) {
	i, err := l.find("validate", term)
	if err != nil {
		return "", err
	}
	return l.entries[i].Term, nil
}

func (l *Lexicon) find(op, term string) (int, error) {
	key, err := checkTerm(op, term)
	if err != nil {
		return 0, err
	}
	if l == nil {
		return 0, notFound(op, key)
	}
	i, ok := l.index[key]
	if !ok {
		return 0, notFound(op, key)
	}
	return i, nil
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.all())
}

// Keys returns an iterator over all terms in construction order.
func (l *Lexicon) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range l.all() {
			if !yield(e.Term) {
				return
			}
		}
	}
}

// Values returns an iterator over all definitions in construction order.
func (l *Lexicon) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range l.all() {
			if !yield(e.Definition) {
				return
			}
		}
	}
}

// Items returns an iterator over (term, definition) pairs in construction order.
func (l *Lexicon) Items() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range l.all() {
			if !yield(e.Term, e.Definition) {
				return
			}
		}
	}
}

// Entries returns a copy of all entries in construction order.
// Modifying the result does not affect the lexicon.
func (l *Lexicon) Entries() []Entry {
	return slices.Clone(l.all())
}

// Map returns a copy of the lexicon as a plain map.
func (l *Lexicon) Map() map[string]string {
	m := make(map[string]string, l.Len())
	for _, e := range l.all() {
		m[e.Term] = e.Definition
	}
	return m
}

func (l *Lexicon) all() []Entry {
	if l == nil {
		return nil
	}
	return l.entries
}
