package cli

import (
	"io"

	"todolist-sync/internal/todolist"
	"todolist-sync/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  todolist.UseCase
	out io.Writer
}

// New creates the terminal front end over uc, writing views to out.
func New(l log.Logger, uc todolist.UseCase, out io.Writer) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		out: out,
	}
}
