package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/robinson"
)

var sample = [][]int{
	{0, 2, 1},
	{2, 0, 1},
	{1, 1, 0},
}

func mustMatrix(t *testing.T, labels []string, rows [][]int) *Matrix {
	t.Helper()
	m, err := NewMatrix(labels, rows)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func checkMatrix(t *testing.T, got *Matrix, labels []string, rows [][]int) {
	t.Helper()
	if !reflect.DeepEqual(got.Labels, labels) {
		t.Errorf("Labels = %v, want %v", got.Labels, labels)
	}
	if !reflect.DeepEqual(got.Table.Rows(), rows) {
		t.Errorf("Rows() = %v, want %v", got.Table.Rows(), rows)
	}
}

func TestReadJSON(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(`{"labels":["a","b","c"],"matrix":[[0,2,1],[2,0,1],[1,1,0]]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	checkMatrix(t, m, []string{"a", "b", "c"}, sample)
}

func TestReadJSONDefaultLabels(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(`{"matrix":[[0,1],[1,0]]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if want := []string{"1", "2"}; !reflect.DeepEqual(m.Labels, want) {
		t.Errorf("Labels = %v, want %v", m.Labels, want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"malformed json", FormatJSON, `{"matrix":`, errors.ErrCodeInvalidFormat},
		{"ragged json", FormatJSON, `{"matrix":[[0,1],[1]]}`, errors.ErrCodeInvalidShape},
		{"negative json", FormatJSON, `{"matrix":[[0,-1],[1,0]]}`, errors.ErrCodeInvalidInput},
		{"label count", FormatJSON, `{"labels":["a"],"matrix":[[0,1],[1,0]]}`, errors.ErrCodeInvalidInput},
		{"malformed toml", FormatTOML, `matrix = [[0, 1]`, errors.ErrCodeInvalidFormat},
		{"ragged toml", FormatTOML, "matrix = [[0, 1, 2], [1, 0, 1]]", errors.ErrCodeInvalidShape},
		{"bad cell", FormatText, "0 x\n1 0\n", errors.ErrCodeInvalidFormat},
		{"ragged text", FormatText, "0 1 2\n1 0 1\n", errors.ErrCodeInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Read() should fail")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v (err = %v)", got, tt.code, err)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
labels = ["x", "y", "z"]
matrix = [
  [0, 2, 1],
  [2, 0, 1],
  [1, 1, 0],
]
`
	m, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	checkMatrix(t, m, []string{"x", "y", "z"}, sample)
}

func TestReadText(t *testing.T) {
	input := `# distances
labels: a b c

0 2 1
2, 0, 1
1	1	0
`
	m, err := ReadText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	checkMatrix(t, m, []string{"a", "b", "c"}, sample)
}

func TestWriteRoundTrip(t *testing.T) {
	m := mustMatrix(t, []string{"a", "b", "c"}, sample)

	for _, format := range []Format{FormatJSON, FormatTOML, FormatText} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, m, format); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			checkMatrix(t, got, m.Labels, m.Table.Rows())
		})
	}
}

func TestWriteText(t *testing.T) {
	m := mustMatrix(t, nil, [][]int{{0, 10}, {10, 0}})

	var buf bytes.Buffer
	if err := WriteText(&buf, m); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if want := "labels: 1 2\n 0 10\n10  0\n"; buf.String() != want {
		t.Errorf("WriteText() = %q, want %q", buf.String(), want)
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	m := mustMatrix(t, []string{"a", "b", "c"}, sample)

	for _, name := range []string{"m.json", "m.toml", "m.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(path, m); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			checkMatrix(t, got, m.Labels, sample)
		})
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "m.xlsx")
	if err := os.WriteFile(unsupported, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(dir, "missing.json"), errors.ErrCodeFileNotFound},
		{"unsupported extension", unsupported, errors.ErrCodeUnsupported},
		{"invalid path", "bad\x00path.json", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Import(tt.path); !errors.Is(err, tt.code) {
				t.Errorf("Import() err = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestWriteResultJSON(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want string
	}{
		{
			name: "labels follow the order",
			rows: [][]int{{0, 2, 1}, {0, 0, 1}, {0, 0, 0}},
			want: `{"robinson":true,"permutation":[1,3,2],"order":["1","3","2"]}`,
		},
		{
			name: "empty matrix keeps array fields",
			rows: nil,
			want: `{"robinson":true,"permutation":[],"order":[]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, nil, tt.rows)

			var buf bytes.Buffer
			if err := WriteResultJSON(&buf, m, robinson.Resolve(m.Table)); err != nil {
				t.Fatalf("WriteResultJSON: %v", err)
			}
			var got, want any
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if err := json.Unmarshal([]byte(tt.want), &want); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("WriteResultJSON() = %s, want %s", buf.String(), tt.want)
			}
		})
	}
}

func TestPermutedLabels(t *testing.T) {
	m := mustMatrix(t, []string{"a", "b"}, [][]int{{0, 1}, {1, 0}})
	if got, want := m.Permuted([]int{2, 1, 7}), []string{"b", "a", "7"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Permuted() = %v, want %v", got, want)
	}
}
