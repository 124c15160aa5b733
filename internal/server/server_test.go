package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
	"github.com/matzehuels/crossgen/pkg/store"
)

func newTestServer() *Server {
	return New(store.NewMemory(), nil, Options{DefaultSize: 10})
}

func generateBody(words ...string) []byte {
	entries := make([]puzzle.Entry, len(words))
	for i, w := range words {
		entries[i] = puzzle.Entry{Word: w, Clue: "clue for " + w}
	}
	body, _ := json.Marshal(map[string]any{"entries": entries})
	return body
}

func postPuzzle(t *testing.T, s *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/puzzles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGeneratePuzzle(t *testing.T) {
	s := newTestServer()
	rec := postPuzzle(t, s, generateBody("CAT", "CAR", "ART"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var p puzzle.Puzzle
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.ID == "" || p.Size != 10 || len(p.Placements) != 3 {
		t.Errorf("unexpected puzzle: id=%q size=%d placements=%d",
			p.ID, p.Size, len(p.Placements))
	}

	// The generated puzzle must be retrievable.
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/puzzles/"+p.ID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET stored puzzle: status = %d", rec.Code)
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   errors.Code
	}{
		{
			name:       "MalformedJSON",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrCodeInvalidInput,
		},
		{
			name:       "EmptyEntries",
			body:       `{"entries": []}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrCodeInvalidBank,
		},
		{
			name:       "LowercaseWord",
			body:       `{"entries": [{"word": "cat", "clue": "pet"}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrCodeInvalidBank,
		},
		{
			name:       "UnplannableBank",
			body:       `{"size": 10, "entries": [{"word": "DISPROPORTIONATELY", "clue": "out of scale"}]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   errors.ErrCodePlanningFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			rec := postPuzzle(t, s, []byte(tt.body))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			var resp struct {
				Code errors.Code `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestGetMissingPuzzle(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/puzzles/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListPuzzles(t *testing.T) {
	s := newTestServer()
	postPuzzle(t, s, generateBody("CAT", "CAR", "ART"))
	postPuzzle(t, s, generateBody("DOG", "DIG", "GOD"))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/puzzles", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var list []*puzzle.Puzzle
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("list length = %d, want 2", len(list))
	}
}

func TestPuzzlePage(t *testing.T) {
	s := newTestServer()
	rec := postPuzzle(t, s, generateBody("CAT", "CAR", "ART"))
	var p puzzle.Puzzle
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/puzzles/"+p.ID, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<h2>Across</h2>") {
		t.Error("page missing clue lists")
	}
}

func TestGenerateRateLimit(t *testing.T) {
	s := New(store.NewMemory(), nil, Options{DefaultSize: 10, GenerateLimit: 2})

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/puzzles",
			bytes.NewReader(generateBody("CAT", "CAR", "ART")))
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}

	// A different IP is unaffected.
	req := httptest.NewRequest(http.MethodPost, "/api/puzzles",
		bytes.NewReader(generateBody("CAT", "CAR", "ART")))
	req.RemoteAddr = "10.0.0.10:1234"
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code == http.StatusTooManyRequests {
		t.Errorf("fresh IP rate limited: %d", rec.Code)
	}
}
