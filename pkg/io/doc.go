// Package io reads and writes dissimilarity matrices.
//
// # Formats
//
// Three encodings are supported. JSON is the canonical one and is also the
// body format of the HTTP API:
//
//	{
//	  "labels": ["a", "b", "c"],
//	  "matrix": [[0, 2, 1], [2, 0, 1], [1, 1, 0]]
//	}
//
// TOML carries the same two keys:
//
//	labels = ["a", "b", "c"]
//	matrix = [[0, 2, 1], [2, 0, 1], [1, 1, 0]]
//
// The text format is a whitespace separated grid, one row per line. Blank
// lines and lines starting with '#' are ignored. An optional first line
// starting with "labels:" names the elements.
//
// In every format the labels are optional; when omitted, elements are named
// "1".."n". Only the upper triangle of the matrix is used by the recognizer,
// but the matrix must be square.
//
// # Import
//
// Use [Import] to read a file, dispatching on its extension (.json, .toml,
// .txt, .tsv, .csv treated as text), or one of [ReadJSON], [ReadTOML],
// [ReadText] for any io.Reader.
//
// Decode failures carry the INVALID_FORMAT code, a non-square matrix carries
// INVALID_SHAPE, and a missing file carries FILE_NOT_FOUND; see
// [github.com/matzehuels/robinson/pkg/errors].
//
// # Export
//
// [WriteJSON] and [WriteText] encode a matrix, [Export] writes one to a file
// chosen by extension, and [WriteResultJSON] encodes a resolution result
// together with the labels of the permuted elements.
package io
