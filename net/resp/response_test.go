package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monigate/monigate/query"
)

func TestList_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	meta := query.Meta{Page: 1, Limit: 10, Total: 1, TotalPages: 1}

	List(w, []map[string]any{{"name": "CPU Usage"}}, meta)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !env.Success {
		t.Error("expected success true")
	}
	if env.Pagination == nil || env.Pagination.Total != 1 {
		t.Errorf("pagination missing: %+v", env.Pagination)
	}
}

func TestFail_Defaults(t *testing.T) {
	w := httptest.NewRecorder()

	Fail(w, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if env.Success {
		t.Error("expected success false")
	}
	if env.Message == "" {
		t.Error("expected a message")
	}
}

func TestFail_NotFound(t *testing.T) {
	w := httptest.NewRecorder()

	Fail(w, NotFound("silence not found"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
