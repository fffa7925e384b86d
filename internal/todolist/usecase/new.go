package usecase

import (
	"sync"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
	"todolist-sync/internal/todolist/repository"
	pkgLog "todolist-sync/pkg/log"
	"todolist-sync/pkg/observable"
)

var _ todolist.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of todolist.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	store repository.RemoteStore
	cache repository.SnapshotCache
	ids   IDGenerator

	// mu serializes snapshot replacement so each publish starts from the
	// previous one. Store calls happen outside it.
	mu       sync.Mutex
	snapshot *observable.Cell[[]model.TodoList]
}

// New creates the synchronization use case. A nil cache behaves as "no
// local storage"; a nil ids uses the clock-based generator.
func New(
	l pkgLog.Logger,
	store repository.RemoteStore,
	cache repository.SnapshotCache,
	ids IDGenerator,
) *implUseCase {
	if cache == nil {
		cache = repository.NewNopCache()
	}
	if ids == nil {
		ids = NewClockIDs()
	}
	return &implUseCase{
		l:        l,
		store:    store,
		cache:    cache,
		ids:      ids,
		snapshot: observable.NewCell([]model.TodoList{}),
	}
}
