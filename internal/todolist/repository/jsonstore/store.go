package jsonstore

import (
	"context"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist/repository"
	pkgLog "todolist-sync/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a RemoteStore backed by the lists REST resource.
func New(client *Client, l pkgLog.Logger) repository.RemoteStore {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) List(ctx context.Context) ([]model.TodoList, error) {
	lists, err := r.client.ListLists(ctx)
	if err != nil {
		r.l.Errorf(ctx, "jsonstore repository: %v", err)
		return nil, err
	}
	return lists, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.TodoList, error) {
	list, err := r.client.GetList(ctx, id)
	if err != nil {
		r.l.Warnf(ctx, "jsonstore repository: %v", err)
		return model.TodoList{}, err
	}
	return list, nil
}

func (r *implRepository) Create(ctx context.Context, list model.TodoList) (model.TodoList, error) {
	created, err := r.client.CreateList(ctx, list)
	if err != nil {
		r.l.Errorf(ctx, "jsonstore repository: %v", err)
		return model.TodoList{}, err
	}
	r.l.Debugf(ctx, "jsonstore repository: created list %s", created.ID)
	return created, nil
}

func (r *implRepository) Replace(ctx context.Context, id string, list model.TodoList) (model.TodoList, error) {
	updated, err := r.client.ReplaceList(ctx, id, list)
	if err != nil {
		r.l.Errorf(ctx, "jsonstore repository: %v", err)
		return model.TodoList{}, err
	}
	r.l.Debugf(ctx, "jsonstore repository: replaced list %s (%d tasks)", id, len(updated.Tasks))
	return updated, nil
}
