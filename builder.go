package lexicon

// Builder provides a fluent API for assembling the entries of a Lexicon.
// Entries keep the order in which they were added. Validation happens only
// in Build, so a Builder never holds a partially valid Lexicon.
type Builder struct {
	entries []Entry
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a term and its definition.
func (b *Builder) Add(term, definition string) *Builder {
	b.entries = append(b.entries, Entry{Term: term, Definition: definition})
	return b
}

// AddEntries appends entries in order.
func (b *Builder) AddEntries(entries ...Entry) *Builder {
	b.entries = append(b.entries, entries...)
	return b
}

// Len returns the number of raw entries added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build validates the accumulated entries and returns a frozen Lexicon.
// The Builder may be reused afterwards; later additions never reach a
// Lexicon that was already built.
func (b *Builder) Build() (*Lexicon, error) {
	return build("new", b.entries)
}
