package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockStore is an in-memory RemoteStore that records every call.
type mockStore struct {
	mu    sync.Mutex
	lists []model.TodoList
	calls []string

	listErr    error
	createErr  error
	replaceErr error

	// onCreate and onReplace, when set, decide what the store hands back.
	onCreate  func(model.TodoList) model.TodoList
	onReplace func(model.TodoList) model.TodoList

	lastReplaced model.TodoList
}

func (m *mockStore) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *mockStore) List(ctx context.Context) ([]model.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")
	if m.listErr != nil {
		return nil, m.listErr
	}
	return model.CloneLists(m.lists), nil
}

func (m *mockStore) Get(ctx context.Context, id string) (model.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Get " + id)
	for _, l := range m.lists {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return model.TodoList{}, fmt.Errorf("get list %s: %w", id, todolist.ErrNotFound)
}

func (m *mockStore) Create(ctx context.Context, list model.TodoList) (model.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create " + list.Title)
	if m.createErr != nil {
		return model.TodoList{}, m.createErr
	}
	if m.onCreate != nil {
		list = m.onCreate(list)
	}
	m.lists = append(m.lists, list.Clone())
	return list.Clone(), nil
}

func (m *mockStore) Replace(ctx context.Context, id string, list model.TodoList) (model.TodoList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Replace " + id)
	m.lastReplaced = list.Clone()
	if m.replaceErr != nil {
		return model.TodoList{}, m.replaceErr
	}
	if m.onReplace != nil {
		list = m.onReplace(list)
	}
	for i, l := range m.lists {
		if l.ID == id {
			m.lists[i] = list.Clone()
			return list.Clone(), nil
		}
	}
	return model.TodoList{}, fmt.Errorf("replace list %s: %w", id, todolist.ErrNotFound)
}

func (m *mockStore) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// mockCache is an in-memory SnapshotCache.
type mockCache struct {
	lists    []model.TodoList
	ok       bool
	readErr  error
	writeErr error
	writes   int
}

func (m *mockCache) Read(ctx context.Context) ([]model.TodoList, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	return model.CloneLists(m.lists), m.ok, nil
}

func (m *mockCache) Write(ctx context.Context, lists []model.TodoList) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.lists = model.CloneLists(lists)
	m.ok = true
	return nil
}

// fixedIDs hands out predictable ids.
type fixedIDs struct {
	listID string
	taskID int64
}

func (f *fixedIDs) ListID() string { return f.listID }

func (f *fixedIDs) TaskID() int64 {
	id := f.taskID
	f.taskID++
	return id
}
