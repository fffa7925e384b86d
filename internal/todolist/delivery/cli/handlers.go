package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
)

// watchCollection loads the snapshot and re-renders the collection view on
// every publish after the current one. The returned func stops watching.
func (h *handler) watchCollection(ctx context.Context) (func(), error) {
	if err := h.uc.InitialLoad(ctx); err != nil {
		return nil, err
	}

	first := true
	unsubscribe := h.uc.Subscribe(func(lists []model.TodoList) {
		if first {
			first = false
			return
		}
		renderCollection(h.out, lists)
	})
	return unsubscribe, nil
}

// Lists prints the collection view.
func (h *handler) Lists(ctx context.Context) error {
	if err := h.uc.InitialLoad(ctx); err != nil {
		return err
	}
	unsubscribe := h.uc.Subscribe(func(lists []model.TodoList) {
		renderCollection(h.out, lists)
	})
	unsubscribe()
	return nil
}

// Show prints the detail view of one list, read straight from the store.
func (h *handler) Show(ctx context.Context, listID string) error {
	if err := todolist.RequireNonBlank("list id", listID); err != nil {
		return err
	}
	list, err := h.uc.FetchByID(ctx, listID)
	if err != nil {
		return err
	}
	renderDetail(h.out, list)
	return nil
}

// Create adds a new empty list.
func (h *handler) Create(ctx context.Context, title string) error {
	if err := todolist.RequireNonBlank("title", title); err != nil {
		return err
	}

	unwatch, err := h.watchCollection(ctx)
	if err != nil {
		return err
	}
	defer unwatch()

	created, err := h.uc.CreateList(ctx, todolist.CreateListInput{Title: strings.TrimSpace(title)})
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "created list %s\n", created.ID)
	return nil
}

// Add appends an open task to listID.
func (h *handler) Add(ctx context.Context, listID, title, description string) error {
	if err := todolist.RequireNonBlank("list id", listID, "title", title, "description", description); err != nil {
		return err
	}

	unwatch, err := h.watchCollection(ctx)
	if err != nil {
		return err
	}
	defer unwatch()

	updated, err := h.uc.AddTask(ctx, todolist.AddTaskInput{
		ListID:      listID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return err
	}
	renderDetail(h.out, updated)
	return nil
}

// Toggle flips the completed flag of a task.
func (h *handler) Toggle(ctx context.Context, listID, rawTaskID string) error {
	if err := todolist.RequireNonBlank("list id", listID, "task id", rawTaskID); err != nil {
		return err
	}
	taskID, err := strconv.ParseInt(strings.TrimSpace(rawTaskID), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: task id %q is not a number", todolist.ErrValidation, rawTaskID)
	}

	unwatch, err := h.watchCollection(ctx)
	if err != nil {
		return err
	}
	defer unwatch()

	updated, err := h.uc.ToggleTask(ctx, todolist.ToggleTaskInput{ListID: listID, TaskID: taskID})
	if err != nil {
		return err
	}
	renderDetail(h.out, updated)
	return nil
}
