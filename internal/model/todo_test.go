package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"todolist-sync/internal/model"
)

func TestTodoListMarshalEmptyTasks(t *testing.T) {
	b, err := json.Marshal(model.TodoList{ID: "1", Title: "A"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"tasks":[]`) {
		t.Errorf("expected tasks to encode as [], got %s", b)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := model.TodoList{ID: "1", Tasks: []model.Task{{ID: 1, Title: "a"}}}
	cp := orig.Clone()
	cp.Tasks[0].Completed = true

	if orig.Tasks[0].Completed {
		t.Error("mutating the clone changed the original")
	}
}

func TestCompletedCount(t *testing.T) {
	l := model.TodoList{Tasks: []model.Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: true},
	}}
	if got := l.CompletedCount(); got != 2 {
		t.Errorf("CompletedCount() = %d, want 2", got)
	}
}

func TestFindTask(t *testing.T) {
	l := model.TodoList{Tasks: []model.Task{{ID: 10}, {ID: 20}}}
	if got := l.FindTask(20); got != 1 {
		t.Errorf("FindTask(20) = %d, want 1", got)
	}
	if got := l.FindTask(30); got != -1 {
		t.Errorf("FindTask(30) = %d, want -1", got)
	}
}
