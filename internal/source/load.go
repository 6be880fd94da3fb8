package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/comalice/lexicon"
)

// Format names a document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, yaml or json)", name)
	}
}

// FormatFromPath picks the decoding format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: unsupported extension (want .yaml, .yml or .json)", path)
	}
}

// Decode reads entries from r in the given format.
func Decode(r io.Reader, format Format) ([]lexicon.Entry, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, fmt.Errorf("cannot decode format %q", format)
	}
}

// Load reads and builds a Lexicon from a .yaml, .yml or .json file.
// A missing file yields an error wrapping os.ErrNotExist.
func Load(path string) (*lexicon.Lexicon, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return decodeAndBuild(path, f, format)
}

// LoadFS is Load for a file inside fsys, e.g. an embed.FS.
func LoadFS(fsys fs.FS, name string) (*lexicon.Lexicon, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	return decodeAndBuild(name, f, format)
}

func decodeAndBuild(name string, r io.Reader, format Format) (*lexicon.Lexicon, error) {
	entries, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	lx, err := lexicon.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lx, nil
}
