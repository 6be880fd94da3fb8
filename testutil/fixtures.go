// Package testutil holds shared fixtures for lexicon tests and benchmarks.
package testutil

import (
	"testing"

	"github.com/comalice/lexicon"
)

// SampleEntries is the canonical four-term table, in construction order.
var SampleEntries = []lexicon.Entry{
	{Term: "ALLOW", Definition: "Permission to proceed"},
	{Term: "DENY", Definition: "Permission refused"},
	{Term: "HOLD", Definition: "Awaiting further input"},
	{Term: "HALT", Definition: "Immediate stop"},
}

// SampleTerms returns SampleEntries as a fresh map.
func SampleTerms() map[string]string {
	m := make(map[string]string, len(SampleEntries))
	for _, e := range SampleEntries {
		m[e.Term] = e.Definition
	}
	return m
}

// NewSample builds the sample lexicon, failing the test on error.
func NewSample(tb testing.TB) *lexicon.Lexicon {
	tb.Helper()
	lx, err := lexicon.New(SampleEntries...)
	if err != nil {
		tb.Fatalf("building sample lexicon: %v", err)
	}
	return lx
}

// Collect drains a two-value iterator into entries.
func Collect(lx *lexicon.Lexicon) []lexicon.Entry {
	var out []lexicon.Entry
	for term, def := range lx.Items() {
		out = append(out, lexicon.Entry{Term: term, Definition: def})
	}
	return out
}
