package repository

import (
	"context"

	"todolist-sync/internal/model"
)

// RemoteStore is the REST collection resource holding every list.
// Errors wrap todolist.ErrNotFound or todolist.ErrNetwork.
type RemoteStore interface {
	List(ctx context.Context) ([]model.TodoList, error)
	Get(ctx context.Context, id string) (model.TodoList, error)
	Create(ctx context.Context, list model.TodoList) (model.TodoList, error)
	Replace(ctx context.Context, id string, list model.TodoList) (model.TodoList, error)
}

// SnapshotCache persists the last known full collection locally.
// Read reports ok=false when nothing is cached.
type SnapshotCache interface {
	Read(ctx context.Context) (lists []model.TodoList, ok bool, err error)
	Write(ctx context.Context, lists []model.TodoList) error
}
