package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a definition encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// LoadFile reads and decodes the definition at path; the format is chosen by
// extension. The definition is validated but not built.
// File errors are wrapped with context (use os.IsNotExist / errors.Is(err, fs.ErrNotExist)).
func LoadFile(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}
	def, err := LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading definition %s: %w", path, err)
	}

	return def, nil
}

// Decode reads all of r and decodes it as format.
func Decode(r io.Reader, format Format) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	return LoadBytes(data, format)
}

// LoadBytes decodes and validates raw definition bytes.
// Empty data (only whitespace) returns ErrEmpty.
func LoadBytes(data []byte, format Format) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var def Definition
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing TOML: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Encode writes def in the given format.
func Encode(w io.Writer, def *Definition, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(def); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
		return nil
	}

	return fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
}
