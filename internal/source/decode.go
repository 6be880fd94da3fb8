// Package source loads lexicon tables from YAML and JSON documents and writes
// them back out for display. Document order is kept, so a Lexicon loaded from
// a file enumerates its terms in the order they were written.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/comalice/lexicon"
)

// DecodeYAML reads a top-level YAML mapping of string terms to string
// definitions. An empty document yields no entries; a stream with more than
// one document is rejected.
func DecodeYAML(r io.Reader) ([]lexicon.Entry, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, malformed("yaml decode", err)
	}

	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, malformed("yaml decode", err)
		}
		return nil, invalidf("line %d: unexpected document after the first", next.Line)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	root = resolve(root)
	if root.Kind != yaml.MappingNode {
		return nil, invalidf("top-level YAML must be a mapping, got %s", kindName(root))
	}

	entries := make([]lexicon.Entry, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := resolve(root.Content[i]), resolve(root.Content[i+1])
		if !isString(k) {
			return nil, invalidf("line %d: keys must be strings, got %s", k.Line, kindName(k))
		}
		if !isString(v) {
			return nil, invalidf("line %d: value for %q must be a string, got %s", v.Line, k.Value, kindName(v))
		}
		if line, dup := seen[k.Value]; dup {
			return nil, invalidf("line %d: key %q already defined on line %d", k.Line, k.Value, line)
		}
		seen[k.Value] = k.Line
		entries = append(entries, lexicon.Entry{Term: k.Value, Definition: v.Value})
	}
	return entries, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return n.ShortTag()
	default:
		return "unknown node"
	}
}

// DecodeJSON reads a top-level JSON object of string terms to string
// definitions.
func DecodeJSON(r io.Reader) ([]lexicon.Entry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed("json decode", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, invalidf("top-level JSON must be an object, got %s", tokenName(tok))
	}

	var entries []lexicon.Entry
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed("json decode", err)
		}
		key := tok.(string) // object keys are always strings

		tok, err = dec.Token()
		if err != nil {
			return nil, malformed("json decode", err)
		}
		val, ok := tok.(string)
		if !ok {
			return nil, invalidf("value for %q must be a string, got %s", key, tokenName(tok))
		}
		if seen[key] {
			return nil, invalidf("key %q defined more than once", key)
		}
		seen[key] = true
		entries = append(entries, lexicon.Entry{Term: key, Definition: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, malformed("json decode", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, invalidf("unexpected data after top-level object")
	}
	return entries, nil
}

func tokenName(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return "object"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}

func invalidf(format string, args ...any) error {
	return &lexicon.Error{Op: "load", Kind: lexicon.KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func malformed(msg string, err error) error {
	return &lexicon.Error{Op: "load", Kind: lexicon.KindInvalidInput, Msg: msg, Err: err}
}
