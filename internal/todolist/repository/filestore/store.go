package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
	"todolist-sync/internal/todolist/repository"
	pkgLog "todolist-sync/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	path  string
	lists []model.TodoList
	l     pkgLog.Logger
}

// New opens the collection stored as a JSON array at path. An empty path
// keeps everything in memory. A missing file starts an empty collection.
func New(path string, l pkgLog.Logger) (repository.RemoteStore, error) {
	r := &implRepository{path: path, lists: []model.TodoList{}, l: l}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.lists); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToLoad, path, err)
		}
	}
	return r, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.TodoList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return model.CloneLists(r.lists), nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.TodoList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return model.TodoList{}, todolist.ErrNotFound
	}
	return r.lists[idx].Clone(), nil
}

// Create stores list, keeping its id when given and assigning a UUIDv7
// otherwise.
func (r *implRepository) Create(ctx context.Context, list model.TodoList) (model.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list = list.Clone()
	if list.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return model.TodoList{}, fmt.Errorf("generate list id: %w", err)
		}
		list.ID = id.String()
	}
	if r.indexOf(list.ID) >= 0 {
		return model.TodoList{}, repository.ErrDuplicateID
	}

	next := append(model.CloneLists(r.lists), list)
	if err := r.persist(next); err != nil {
		r.l.Errorf(ctx, "filestore.Create: %v", err)
		return model.TodoList{}, err
	}
	r.lists = next
	return list.Clone(), nil
}

// Replace overwrites the list stored under id. The stored id is always id,
// whatever the body says.
func (r *implRepository) Replace(ctx context.Context, id string, list model.TodoList) (model.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return model.TodoList{}, todolist.ErrNotFound
	}

	list = list.Clone()
	list.ID = id

	next := model.CloneLists(r.lists)
	next[idx] = list
	if err := r.persist(next); err != nil {
		r.l.Errorf(ctx, "filestore.Replace: %v", err)
		return model.TodoList{}, err
	}
	r.lists = next
	return list.Clone(), nil
}

func (r *implRepository) indexOf(id string) int {
	for i, l := range r.lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (r *implRepository) persist(lists []model.TodoList) error {
	if r.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if err1 := tmp.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err == nil {
		err = os.Rename(name, r.path)
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	return nil
}
