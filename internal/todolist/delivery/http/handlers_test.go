package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todolist-sync/internal/middleware"
	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist/repository/filestore"
	"todolist-sync/pkg/log"
)

func newTestRouter(t *testing.T, seed ...model.TodoList) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := filestore.New("", log.NewNop())
	if err != nil {
		t.Fatalf("filestore.New: %v", err)
	}
	for _, l := range seed {
		if _, err := store.Create(t.Context(), l); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	r := gin.New()
	RegisterRoutes(r.Group("/lists"), New(log.NewNop(), store), middleware.New(log.NewNop(), 0))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList_EmptyCollection(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/lists", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestCreate_AssignsIDAndReturns201(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/lists", `{"title":"Groceries","tasks":[]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var got listResp
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" {
		t.Error("expected generated id")
	}
	if got.Title != "Groceries" {
		t.Errorf("unexpected title %q", got.Title)
	}
	if got.Tasks == nil || len(got.Tasks) != 0 {
		t.Errorf("expected empty tasks, got %v", got.Tasks)
	}

	w = do(r, http.MethodGet, "/lists/"+got.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on detail, got %d", w.Code)
	}
}

func TestCreate_Validation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"missing title", `{"tasks":[]}`},
		{"blank title", `{"title":"   "}`},
		{"task without title", `{"title":"A","tasks":[{"id":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/lists", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	r := newTestRouter(t, model.TodoList{ID: "1", Title: "A"})

	w := do(r, http.MethodPost, "/lists", `{"id":"1","title":"B"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestDetail_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/lists/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReplace(t *testing.T) {
	r := newTestRouter(t, model.TodoList{ID: "1", Title: "A", Tasks: []model.Task{{ID: 10, Title: "Milk"}}})

	body := `{"id":"ignored","title":"A","tasks":[{"id":10,"title":"Milk","description":"2L","completed":true}]}`
	w := do(r, http.MethodPut, "/lists/1", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got listResp
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "1" {
		t.Errorf("expected path id to win, got %q", got.ID)
	}
	if len(got.Tasks) != 1 || !got.Tasks[0].Completed || got.Tasks[0].Description != "2L" {
		t.Errorf("unexpected tasks %+v", got.Tasks)
	}

	w = do(r, http.MethodGet, "/lists", "")
	var all []listResp
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 list, got %d", len(all))
	}
}

func TestReplace_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPut, "/lists/nope", `{"title":"A"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
