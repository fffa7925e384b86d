package usecase

import (
	"context"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
)

// AddTask fetches the list from the store, appends a new open task and
// sends the whole list back. The snapshot entry is replaced with what the
// store returns.
func (uc *implUseCase) AddTask(ctx context.Context, input todolist.AddTaskInput) (model.TodoList, error) {
	current, err := uc.store.Get(ctx, input.ListID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTask store.Get: %v", err)
		return model.TodoList{}, err
	}

	updated := current.Clone()
	updated.Tasks = append(updated.Tasks, model.Task{
		ID:          uc.ids.TaskID(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
	})

	return uc.replace(ctx, input.ListID, updated)
}

// ToggleTask fetches the list from the store, flips the completed flag of
// the matching task and sends the whole list back. An unknown task id
// sends the list back unchanged.
func (uc *implUseCase) ToggleTask(ctx context.Context, input todolist.ToggleTaskInput) (model.TodoList, error) {
	current, err := uc.store.Get(ctx, input.ListID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleTask store.Get: %v", err)
		return model.TodoList{}, err
	}

	updated := current.Clone()
	if idx := updated.FindTask(input.TaskID); idx >= 0 {
		updated.Tasks[idx].Completed = !updated.Tasks[idx].Completed
	} else {
		uc.l.Warnf(ctx, "uc.ToggleTask: task %d not in list %s, sending list unchanged", input.TaskID, input.ListID)
	}

	return uc.replace(ctx, input.ListID, updated)
}

func (uc *implUseCase) replace(ctx context.Context, listID string, updated model.TodoList) (model.TodoList, error) {
	saved, err := uc.store.Replace(ctx, listID, updated)
	if err != nil {
		uc.l.Errorf(ctx, "uc.replace store.Replace: %v", err)
		return model.TodoList{}, err
	}

	uc.replaceInSnapshot(ctx, saved)
	return saved, nil
}
