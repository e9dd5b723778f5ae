package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/robinson"
)

// WriteJSON encodes m as an indented JSON document that [ReadJSON] reads
// back unchanged.
func WriteJSON(w io.Writer, m *Matrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Labels: m.Labels, Matrix: m.Table.Rows()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes m with top-level labels and matrix keys.
func WriteTOML(w io.Writer, m *Matrix) error {
	if err := toml.NewEncoder(w).Encode(document{Labels: m.Labels, Matrix: m.Table.Rows()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText encodes m as a labels line followed by a right-aligned grid.
func WriteText(w io.Writer, m *Matrix) error {
	rows := m.Table.Rows()
	width := 1
	for _, row := range rows {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var b strings.Builder
	if len(m.Labels) > 0 {
		b.WriteString("labels: ")
		b.WriteString(strings.Join(m.Labels, " "))
		b.WriteByte('\n')
	}
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Write encodes m in the given format.
func Write(w io.Writer, m *Matrix, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, m)
	case FormatTOML:
		return WriteTOML(w, m)
	case FormatText:
		return WriteText(w, m)
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown matrix format %q", format)
	}
}

// Export writes m to path in the format implied by its extension.
func Export(path string, m *Matrix) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, m, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ResultDocument is the JSON shape of a resolution result.
type ResultDocument struct {
	Robinson    bool     `json:"robinson"`
	Permutation []int    `json:"permutation"`
	Order       []string `json:"order"`
	Dropped     []int    `json:"dropped,omitempty"`
}

// NewResultDocument pairs res with the labels of m.
func NewResultDocument(m *Matrix, res robinson.Result) ResultDocument {
	perm := res.Permutation
	if perm == nil {
		perm = []int{}
	}
	return ResultDocument{
		Robinson:    res.Robinson,
		Permutation: perm,
		Order:       m.Permuted(perm),
		Dropped:     res.Dropped,
	}
}

// WriteResultJSON encodes res, with element labels taken from m.
func WriteResultJSON(w io.Writer, m *Matrix, res robinson.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewResultDocument(m, res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
