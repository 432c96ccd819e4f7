package graph

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/graphmill/condense/pkg/errors"
)

// DetectFormat maps a file path to its graph format by extension.
// Returns ErrCodeUnsupported for anything other than .json or .toml.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported graph file extension %q (want .json or .toml)", filepath.Ext(path))
	}
}

// ReadFile reads a graph file, detecting the format from the extension.
// The graph is validated before it is returned.
func ReadFile(path string) (Graph, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Graph{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return Graph{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	return Read(f, format)
}

// Read decodes a graph from r in the given format and validates it.
func Read(r io.Reader, format string) (Graph, error) {
	var g Graph
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON graph")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
			return Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML graph")
		}
	default:
		return Graph{}, errors.New(errors.ErrCodeUnsupported, "unsupported graph format %q", format)
	}

	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as indented JSON to w.
func Write(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// WriteFile writes a graph to a JSON file with 0644 permissions.
func WriteFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, f)
}
