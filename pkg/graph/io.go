package graph

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathfinder/pkg/errors"
)

// Supported request file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFromPath infers the request format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported file extension %q (want .json or .toml)", ext)
	}
}

// ReadRequest decodes a request from r in the given format.
func ReadRequest(r io.Reader, format string) (*Request, error) {
	var req Request
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON request")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&req); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML request")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return &req, nil
}

// ReadRequestFile reads a request from a .json or .toml file.
func ReadRequestFile(path string) (*Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRequest(f, format)
}
