// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gf2grover/gf2"
	"github.com/naoina/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat indicates an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("problem: unknown format")

	// ErrSyntax indicates malformed compact input or an undecodable file.
	ErrSyntax = errors.New("problem: syntax error")
)

// Format is a serialization format.
type Format int

const (
	FormatTOML Format = iota + 1
	FormatYAML
	FormatJSON
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps "toml", "yaml"/"yml" or "json" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// File is the serialized form of a system.
type File struct {
	Name   string  `toml:"name" yaml:"name,omitempty" json:"name,omitempty"`
	Matrix [][]int `toml:"matrix" yaml:"matrix" json:"matrix"`
	Target []int   `toml:"target" yaml:"target" json:"target"`
}

// FromSystem captures sys in serializable form.
func FromSystem(name string, sys *gf2.System) *File {
	matrix, target := sys.Ints()

	return &File{Name: name, Matrix: matrix, Target: target}
}

// System validates the file contents and builds the system.
func (f *File) System() (*gf2.System, error) {
	return gf2.FromInts(f.Matrix, f.Target)
}

// Load reads a problem file, choosing the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return f, nil
}

// Decode reads one File from r. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*File, error) {
	var (
		f   File
		err error
	)
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&f)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, fmt.Errorf("Decode: %s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, format, err)
	}

	return &f, nil
}

// Encode writes f to w in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(f)
	default:
		return fmt.Errorf("Encode: %s: %w", format, ErrUnknownFormat)
	}
}

// Marshal is Encode into a byte slice.
func (f *File) Marshal(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Parse builds a system from compact text: matrix rows of '0'/'1' separated
// by ',' or ';' and a target bitstring. Spaces are ignored.
//
//	Parse("110,011", "00") // x₀⊕x₁ = 0, x₁⊕x₂ = 0
func Parse(matrix, target string) (*gf2.System, error) {
	rows := strings.FieldsFunc(matrix, func(r rune) bool { return r == ',' || r == ';' })
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty matrix %q", ErrSyntax, matrix)
	}
	bm := make([][]bool, len(rows))
	for i, row := range rows {
		bits, err := parseBits(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		bm[i] = bits
	}
	bt, err := parseBits(target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	return gf2.NewSystem(bm, bt)
}

func parseBits(s string) ([]bool, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == ',' {
			return -1
		}

		return r
	}, s)
	x, n, err := gf2.ParseBitstring(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return gf2.Unpack(x, n), nil
}
