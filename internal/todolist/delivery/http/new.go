package http

import (
	"todolist-sync/internal/todolist/repository"
	"todolist-sync/pkg/log"
)

type handler struct {
	l     log.Logger
	store repository.RemoteStore
}

// New creates the HTTP handler serving the lists resource from store.
func New(l log.Logger, store repository.RemoteStore) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
