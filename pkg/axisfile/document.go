// Package axisfile reads axis system definitions from YAML or TOML files.
package axisfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// Format identifies a definition file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Document is the on-disk shape of one axis system
type Document struct {
	Name         string        `yaml:"name" toml:"name"`
	Distances    []float64     `yaml:"distances" toml:"distances"`
	Angles       []float64     `yaml:"angles" toml:"angles"`
	Labels       []string      `yaml:"labels" toml:"labels"`
	Length       *float64      `yaml:"length" toml:"length"`
	Limit        *float64      `yaml:"limit" toml:"limit"`
	CustomNumber string        `yaml:"custom_number" toml:"custom_number"`
	Placement    PlacementSpec `yaml:"placement" toml:"placement"`
	LabelOffset  PlacementSpec `yaml:"label_offset" toml:"label_offset"`
	Numbering    NumberingSpec `yaml:"numbering" toml:"numbering"`
	Bubbles      BubbleSpec    `yaml:"bubbles" toml:"bubbles"`
	DrawStyle    string        `yaml:"draw_style" toml:"draw_style"`
}

// PlacementSpec is a translation plus a rotation about Z in degrees
type PlacementSpec struct {
	X        float64 `yaml:"x" toml:"x"`
	Y        float64 `yaml:"y" toml:"y"`
	Z        float64 `yaml:"z" toml:"z"`
	Rotation float64 `yaml:"rotation" toml:"rotation"`
}

// NumberingSpec selects the bubble numbering
type NumberingSpec struct {
	Style string `yaml:"style" toml:"style"`
	Start int    `yaml:"start" toml:"start"`
}

// BubbleSpec configures bubble placement and size in mm
type BubbleSpec struct {
	Position string  `yaml:"position" toml:"position"`
	Size     float64 `yaml:"size" toml:"size"`
	FontSize float64 `yaml:"font_size" toml:"font_size"`
}

// Parse reads a definition file, choosing the decoder by extension
func Parse(filename string) (*Document, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return doc, nil
}

// Decode reads one document in the given format
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML definition: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML definition: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown TOML key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	return &doc, nil
}

// Encode writes doc in the given format
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML definition: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML definition: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}
}
