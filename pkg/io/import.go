package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/robinson/pkg/errors"
)

// Format names an on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// document is the shared shape of the JSON and TOML encodings.
type document struct {
	Labels []string `json:"labels,omitempty" toml:"labels"`
	Matrix [][]int  `json:"matrix" toml:"matrix"`
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".txt", ".tsv", ".csv", ".mat", "":
		return FormatText, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unknown matrix format %q", filepath.Ext(path))
	}
}

// Read decodes a matrix from r in the given format.
func Read(r io.Reader, format Format) (*Matrix, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatText:
		return ReadText(r)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown matrix format %q", format)
	}
}

// ReadJSON decodes a {"labels": [...], "matrix": [[...]]} document.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Matrix, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return doc.matrix()
}

// ReadTOML decodes a document with top-level labels and matrix keys.
func ReadTOML(r io.Reader) (*Matrix, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return doc.matrix()
}

// ReadText decodes a whitespace separated grid. Commas are accepted as
// separators too, so simple CSV files read as text.
func ReadText(r io.Reader) (*Matrix, error) {
	var doc document
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(text, "labels:"); ok {
			doc.Labels = fields(rest)
			continue
		}

		cells := fields(text)
		row := make([]int, len(cells))
		for i, c := range cells {
			v, err := strconv.Atoi(c)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d column %d", line, i+1)
			}
			row[i] = v
		}
		doc.Matrix = append(doc.Matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read text")
	}
	return doc.matrix()
}

// Import reads the matrix file at path, choosing the decoder from the
// extension.
func Import(path string) (*Matrix, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (d document) matrix() (*Matrix, error) {
	if d.Matrix == nil {
		d.Matrix = [][]int{}
	}
	return NewMatrix(d.Labels, d.Matrix)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
