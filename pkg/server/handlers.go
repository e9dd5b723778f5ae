package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/robinson/pkg/buildinfo"
	"github.com/matzehuels/robinson/pkg/errors"
	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/pipeline"
	"github.com/matzehuels/robinson/pkg/robinson"
)

type matrixRequest struct {
	Labels []string `json:"labels,omitempty"`
	Matrix [][]int  `json:"matrix"`
}

type resolveRequest struct {
	matrixRequest
	Trace   bool `json:"trace,omitempty"`
	Refresh bool `json:"refresh,omitempty"`
}

type resolveResponse struct {
	mio.ResultDocument
	Trace     *robinson.Trace `json:"trace,omitempty"`
	TableHash string          `json:"table_hash"`
	CacheHit  bool            `json:"cache_hit"`
	Duration  string          `json:"duration"`
}

type checkRequest struct {
	matrixRequest
	Permutation []int `json:"permutation,omitempty"`
}

// violation names the offending cell both by position in the checked order
// and by element.
type violation struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	RowElem string `json:"row_element"`
	ColElem string `json:"col_element"`
}

type checkResponse struct {
	Robinson    bool       `json:"robinson"`
	Permutation []int      `json:"permutation"`
	Violation   *violation `json:"violation,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := mio.NewMatrix(req.Labels, req.Matrix)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	res, err := s.runner.Resolve(r.Context(), m.Table, pipeline.Options{
		Trace:   req.Trace,
		Refresh: req.Refresh,
		Logger:  s.logger.With("id", RequestID(r.Context())),
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		ResultDocument: mio.NewResultDocument(m, res.Result),
		Trace:          res.Trace,
		TableHash:      res.TableHash,
		CacheHit:       res.CacheHit,
		Duration:       res.Duration.String(),
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := mio.NewMatrix(req.Labels, req.Matrix)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	perm := req.Permutation
	if perm == nil {
		perm = identity(m.Table.Size())
	}
	reordered, err := m.Table.Reorder(perm)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	resp := checkResponse{Robinson: true, Permutation: perm}
	if i, j, found := reordered.Violation(); found {
		resp.Robinson = false
		resp.Violation = &violation{
			Row:     i,
			Col:     j,
			RowElem: m.Label(perm[i-1]),
			ColElem: m.Label(perm[j-1]),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := mio.NewMatrix(req.Labels, req.Matrix)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	data, _, err := s.runner.RenderTrace(r.Context(), m.Table, m.Labels, format)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	contentType := "image/svg+xml"
	if format == pipeline.FormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return false
	}
	return true
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i + 1
	}
	return perm
}
