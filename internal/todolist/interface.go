package todolist

import (
	"context"

	"todolist-sync/internal/model"
)

// UseCase keeps an in-memory snapshot of every list consistent with the
// remote store and broadcasts each new snapshot to subscribers.
type UseCase interface {
	// InitialLoad populates the snapshot from the local cache when present,
	// otherwise from the store.
	InitialLoad(ctx context.Context) error
	// FetchByID reads one list straight from the store. The snapshot is not touched.
	FetchByID(ctx context.Context, id string) (model.TodoList, error)
	CreateList(ctx context.Context, input CreateListInput) (model.TodoList, error)
	AddTask(ctx context.Context, input AddTaskInput) (model.TodoList, error)
	ToggleTask(ctx context.Context, input ToggleTaskInput) (model.TodoList, error)

	// Snapshot returns a copy of the current collection.
	Snapshot() []model.TodoList
	// Subscribe calls fn with the current collection now and after every publish.
	Subscribe(fn func([]model.TodoList)) (unsubscribe func())
}
