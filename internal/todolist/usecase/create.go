package usecase

import (
	"context"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
)

// CreateList sends a new empty list to the store and appends the store's
// version of it to the snapshot. The title is validated by the caller.
func (uc *implUseCase) CreateList(ctx context.Context, input todolist.CreateListInput) (model.TodoList, error) {
	candidate := model.TodoList{
		ID:    uc.ids.ListID(),
		Title: input.Title,
		Tasks: []model.Task{},
	}

	created, err := uc.store.Create(ctx, candidate)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList store.Create: %v", err)
		return model.TodoList{}, err
	}

	uc.appendToSnapshot(ctx, created)
	return created, nil
}
