package http

import (
	"todolist-sync/internal/model"
)

// --- Request DTOs ---

type taskReq struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type listReq struct {
	ID    string    `json:"id"`
	Title string    `json:"title" binding:"required"`
	Tasks []taskReq `json:"tasks" binding:"dive"`
}

func (r listReq) toModel() model.TodoList {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = model.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
		}
	}
	return model.TodoList{
		ID:    r.ID,
		Title: r.Title,
		Tasks: tasks,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type listResp struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Tasks []taskResp `json:"tasks"`
}

func newListResp(l model.TodoList) listResp {
	tasks := make([]taskResp, len(l.Tasks))
	for i, t := range l.Tasks {
		tasks[i] = taskResp{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
		}
	}
	return listResp{
		ID:    l.ID,
		Title: l.Title,
		Tasks: tasks,
	}
}

func newListsResp(lists []model.TodoList) []listResp {
	out := make([]listResp, len(lists))
	for i, l := range lists {
		out[i] = newListResp(l)
	}
	return out
}
