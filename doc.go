// Package lexicon provides a frozen, exact-match term-to-definition dictionary.
//
// A Lexicon is built once from a finite set of (term, definition) pairs.
// Terms and definitions are trimmed of surrounding whitespace; empty results
// and strip-collisions (two raw terms that trim to the same string) reject the
// whole construction. After that the Lexicon only answers lookups.
//
// This package uses ONLY the Go standard library. File loaders and the CLI
// live in internal/source and cmd/lexicon.
//
// Core invariants:
// - No mutation after construction; views are copies or iterators
// - Exact matches only, no fallback or approximate result
// - Safe for concurrent readers without locking
package lexicon
