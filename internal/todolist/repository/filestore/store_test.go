package filestore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
	"todolist-sync/internal/todolist/repository"
	"todolist-sync/internal/todolist/repository/filestore"
	pkgLog "todolist-sync/pkg/log"
)

func TestStoreRoundTripOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "lists.json")

	s, err := filestore.New(path, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	created, err := s.Create(ctx, model.TodoList{ID: "1", Title: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Tasks == nil {
		t.Error("expected non-nil tasks")
	}

	upd := created.Clone()
	upd.ID = "ignored"
	upd.Tasks = append(upd.Tasks, model.Task{ID: 5, Title: "t"})
	replaced, err := s.Replace(ctx, "1", upd)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.ID != "1" {
		t.Errorf("replace kept body id %q, want path id", replaced.ID)
	}

	reopened, err := filestore.New(path, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != 5 {
		t.Errorf("unexpected list after reopen: %+v", got)
	}
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := filestore.New("", pkgLog.NewNop())

	if _, err := s.Get(ctx, "x"); !errors.Is(err, todolist.ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Replace(ctx, "x", model.TodoList{}); !errors.Is(err, todolist.ErrNotFound) {
		t.Errorf("replace: expected ErrNotFound, got %v", err)
	}

	if _, err := s.Create(ctx, model.TodoList{ID: "dup"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create(ctx, model.TodoList{ID: "dup"}); !errors.Is(err, repository.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestStoreAssignsID(t *testing.T) {
	s, _ := filestore.New("", pkgLog.NewNop())
	created, err := s.Create(context.Background(), model.TodoList{Title: "no id"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("expected generated uuid, got %q", created.ID)
	}
}

func TestStoreListPreservesOrderAndCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := filestore.New("", pkgLog.NewNop())
	for _, id := range []string{"c", "a", "b"} {
		if _, err := s.Create(ctx, model.TodoList{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	lists, _ := s.List(ctx)
	if lists[0].ID != "c" || lists[1].ID != "a" || lists[2].ID != "b" {
		t.Errorf("order not preserved: %+v", lists)
	}
	lists[0].Title = "mutated"
	again, _ := s.List(ctx)
	if again[0].Title == "mutated" {
		t.Error("List returned shared state")
	}
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.json")
	os.WriteFile(path, []byte("{"), 0o644)
	if _, err := filestore.New(path, pkgLog.NewNop()); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("expected ErrFailedToLoad, got %v", err)
	}
}
