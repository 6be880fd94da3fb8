// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/lexicon"
)

// GenEntries creates n distinct entries named t0..t(n-1).
// When padded is set every term carries surrounding whitespace, exercising
// normalisation during construction.
func GenEntries(n int, padded bool) []lexicon.Entry {
	if n < 0 {
		n = 0
	}
	entries := make([]lexicon.Entry, n)
	for i := range entries {
		term := fmt.Sprintf("t%d", i)
		if padded {
			term = "  " + term + "\t"
		}
		entries[i] = lexicon.Entry{Term: term, Definition: fmt.Sprintf("definition of term %d", i)}
	}
	return entries
}

// GenLexicon builds a lexicon of n entries, panicking on failure.
func GenLexicon(n int) *lexicon.Lexicon {
	lx, err := lexicon.New(GenEntries(n, false)...)
	if err != nil {
		panic(err)
	}
	return lx
}

// GenYAML generates a YAML document with n entries in order.
func GenYAML(n int) []byte {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range GenEntries(n, false) {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Term},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Definition},
		)
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		panic(err)
	}
	return data
}
