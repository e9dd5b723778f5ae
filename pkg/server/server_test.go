package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/pipeline"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{})
	srv := httptest.NewServer(New(pipeline.NewRunner(nil, nil, logger), logger).Handler())
	t.Cleanup(srv.Close)
	return srv, &logs
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["status"] != "ok" || body["version"] == nil {
		t.Errorf("body = %v", body)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("X-Request-ID = %q is not a uuid", resp.Header.Get(RequestIDHeader))
	}
}

func TestRequestIDEchoed(t *testing.T) {
	srv, logs := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}
	if !strings.Contains(logs.String(), id) {
		t.Errorf("access log should carry the request id:\n%s", logs.String())
	}
}

func TestResolve(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv.URL+"/v1/resolve",
		`{"labels":["a","b","c"],"matrix":[[0,2,1],[0,0,1],[0,0,0]],"trace":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Robinson    bool     `json:"robinson"`
		Permutation []int    `json:"permutation"`
		Order       []string `json:"order"`
		Trace       *struct {
			Pivot int `json:"pivot"`
		} `json:"trace"`
		TableHash string `json:"table_hash"`
	}
	decodeBody(t, resp, &body)

	if !body.Robinson {
		t.Error("robinson = false, want true")
	}
	if strings.Join(body.Order, "") != "acb" {
		t.Errorf("order = %v, want [a c b]", body.Order)
	}
	if body.Trace == nil || body.Trace.Pivot != 1 {
		t.Errorf("trace = %+v, want pivot 1", body.Trace)
	}
	if len(body.TableHash) != 64 {
		t.Errorf("table_hash = %q", body.TableHash)
	}
}

func TestCheck(t *testing.T) {
	srv, _ := newTestServer(t)
	matrix := `"labels":["a","b","c"],"matrix":[[0,2,1],[0,0,1],[0,0,0]]`

	t.Run("identity violates", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/check", "{"+matrix+"}")
		var body checkResponse
		decodeBody(t, resp, &body)
		if body.Robinson || body.Violation == nil {
			t.Fatalf("body = %+v, want a violation", body)
		}
		if body.Violation.Row != 1 || body.Violation.Col != 3 || body.Violation.ColElem != "c" {
			t.Errorf("violation = %+v, want (1,3) at c", *body.Violation)
		}
	})

	t.Run("compatible order", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/check", "{"+matrix+`,"permutation":[1,3,2]}`)
		var body checkResponse
		decodeBody(t, resp, &body)
		if !body.Robinson || body.Violation != nil {
			t.Errorf("body = %+v, want robinson", body)
		}
	})

	t.Run("bad permutation", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/check", "{"+matrix+`,"permutation":[1,1,2]}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		var body errorBody
		decodeBody(t, resp, &body)
		if body.Error.Code != string(errors.ErrCodeInvalidPermutation) {
			t.Errorf("code = %q", body.Error.Code)
		}
	})
}

func TestErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   errors.Code
	}{
		{"malformed body", "/v1/resolve", `{"matrix":`, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"not square", "/v1/resolve", `{"matrix":[[0,1],[1]]}`, http.StatusBadRequest, errors.ErrCodeInvalidShape},
		{"negative", "/v1/check", `{"matrix":[[0,-1],[1,0]]}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"trace format", "/v1/trace?format=png", `{"matrix":[[0,1],[1,0]]}`, http.StatusUnsupportedMediaType, errors.ErrCodeUnsupported},
		{"unknown route", "/v1/nope", `{}`, http.StatusNotFound, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorBody
			decodeBody(t, resp, &body)
			if body.Error.Code != string(tt.code) {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
			if body.RequestID == "" {
				t.Error("error body should carry the request id")
			}
		})
	}
}

func TestTraceDOT(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv.URL+"/v1/trace?format=dot", `{"matrix":[[0,2,1],[0,0,1],[0,0,0]]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("Content-Type = %q", ct)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if !strings.HasPrefix(buf.String(), "digraph") {
		t.Errorf("body = %q", buf.String())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidShape, http.StatusBadRequest},
		{errors.ErrCodeInvalidPermutation, http.StatusBadRequest},
		{errors.ErrCodeFileNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusUnsupportedMediaType},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(errors.New(tt.code, "x")); got != tt.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
