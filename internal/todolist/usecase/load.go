package usecase

import (
	"context"

	"todolist-sync/internal/model"
)

// InitialLoad adopts the cached collection when there is one. Otherwise it
// fetches the collection from the store, publishes it and caches it.
// Nothing is retried.
func (uc *implUseCase) InitialLoad(ctx context.Context) error {
	cached, ok, err := uc.cache.Read(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.InitialLoad cache.Read: %v", err)
	}
	if err == nil && ok {
		uc.l.Debugf(ctx, "uc.InitialLoad: using %d cached lists", len(cached))
		uc.setSnapshot(ctx, cached, false)
		return nil
	}

	lists, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.InitialLoad store.List: %v", err)
		return err
	}

	uc.setSnapshot(ctx, lists, true)
	return nil
}

// FetchByID reads one list from the store without touching the snapshot.
func (uc *implUseCase) FetchByID(ctx context.Context, id string) (model.TodoList, error) {
	list, err := uc.store.Get(ctx, id)
	if err != nil {
		return model.TodoList{}, err
	}
	return list, nil
}
