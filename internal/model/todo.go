package model

import "encoding/json"

// Task is a single to-do item. Its ID is unique within the owning list.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoList is a titled, ordered sequence of tasks. Task order is insertion order.
type TodoList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// MarshalJSON always encodes tasks as an array, never null.
func (l TodoList) MarshalJSON() ([]byte, error) {
	type alias TodoList
	a := alias(l)
	if a.Tasks == nil {
		a.Tasks = []Task{}
	}
	return json.Marshal(a)
}

// Clone returns a deep copy of l.
func (l TodoList) Clone() TodoList {
	out := l
	out.Tasks = make([]Task, len(l.Tasks))
	copy(out.Tasks, l.Tasks)
	return out
}

// CompletedCount returns how many tasks in l are completed.
func (l TodoList) CompletedCount() int {
	n := 0
	for _, t := range l.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// FindTask returns the index of the task with the given id, or -1.
func (l TodoList) FindTask(id int64) int {
	for i, t := range l.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CloneLists deep-copies a collection.
func CloneLists(lists []TodoList) []TodoList {
	out := make([]TodoList, len(lists))
	for i, l := range lists {
		out[i] = l.Clone()
	}
	return out
}
