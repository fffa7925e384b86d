package usecase

import (
	"context"

	"todolist-sync/internal/model"
)

// Snapshot returns a copy of the current collection.
func (uc *implUseCase) Snapshot() []model.TodoList {
	return model.CloneLists(uc.snapshot.Get())
}

// Subscribe calls fn with the current collection and again after every
// publish. Each call gets its own copy. fn must not call back into the
// use case's mutating operations.
func (uc *implUseCase) Subscribe(fn func([]model.TodoList)) func() {
	return uc.snapshot.Subscribe(func(lists []model.TodoList) {
		fn(model.CloneLists(lists))
	})
}

// setSnapshot replaces the whole collection, publishes it and optionally
// writes it to the cache.
func (uc *implUseCase) setSnapshot(ctx context.Context, lists []model.TodoList, persist bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.uniqueByID(ctx, lists)
	uc.snapshot.Publish(next)
	if persist {
		uc.persist(ctx, next)
	}
}

// appendToSnapshot adds a newly created list. If the store handed back an
// id the snapshot already holds, that entry is replaced instead.
func (uc *implUseCase) appendToSnapshot(ctx context.Context, created model.TodoList) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.snapshot.Get()
	next := make([]model.TodoList, 0, len(current)+1)
	replaced := false
	for _, l := range current {
		if l.ID == created.ID {
			uc.l.Warnf(ctx, "usecase.appendToSnapshot: list %s already present, replacing", created.ID)
			next = append(next, created.Clone())
			replaced = true
			continue
		}
		next = append(next, l)
	}
	if !replaced {
		next = append(next, created.Clone())
	}

	uc.snapshot.Publish(next)
	uc.persist(ctx, next)
}

// replaceInSnapshot swaps the entry whose id matches updated. When nothing
// matches (the list vanished between fetch and update) the snapshot is left
// as it is and updated is dropped.
func (uc *implUseCase) replaceInSnapshot(ctx context.Context, updated model.TodoList) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.snapshot.Get()
	idx := -1
	for i, l := range current {
		if l.ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		uc.l.Warnf(ctx, "usecase.replaceInSnapshot: list %s not in snapshot, dropping update", updated.ID)
		return
	}

	next := make([]model.TodoList, len(current))
	copy(next, current)
	next[idx] = updated.Clone()

	uc.snapshot.Publish(next)
	uc.persist(ctx, next)
}

// persist writes the collection to the cache. Cache failures never fail
// the operation that produced the snapshot.
func (uc *implUseCase) persist(ctx context.Context, lists []model.TodoList) {
	if err := uc.cache.Write(ctx, lists); err != nil {
		uc.l.Warnf(ctx, "usecase.persist: cache write failed: %v", err)
	}
}

// uniqueByID deep-copies lists, keeping the first list seen for each id.
func (uc *implUseCase) uniqueByID(ctx context.Context, lists []model.TodoList) []model.TodoList {
	seen := make(map[string]struct{}, len(lists))
	out := make([]model.TodoList, 0, len(lists))
	for _, l := range lists {
		if _, dup := seen[l.ID]; dup {
			uc.l.Warnf(ctx, "usecase.uniqueByID: duplicate list id %s ignored", l.ID)
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l.Clone())
	}
	return out
}
