package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/comalice/lexicon"
)

// Encode writes every entry of lx to w in construction order.
func Encode(w io.Writer, lx *lexicon.Lexicon, format Format) error {
	switch format {
	case FormatText:
		return encodeText(w, lx)
	case FormatYAML:
		return encodeYAML(w, lx)
	case FormatJSON:
		return encodeJSON(w, lx)
	default:
		return fmt.Errorf("cannot encode format %q", format)
	}
}

func encodeText(w io.Writer, lx *lexicon.Lexicon) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for term, def := range lx.Items() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", term, def); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return tw.Flush()
}

func encodeYAML(w io.Writer, lx *lexicon.Lexicon) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for term, def := range lx.Items() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: term},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: def},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}

func encodeJSON(w io.Writer, lx *lexicon.Lexicon) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for term, def := range lx.Items() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(term)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		v, err := json.Marshal(def)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("json indent: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
