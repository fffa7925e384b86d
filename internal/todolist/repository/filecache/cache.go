package filecache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"todolist-sync/internal/model"
	"todolist-sync/internal/todolist/repository"
	pkgLog "todolist-sync/pkg/log"
)

// DefaultKey is the key the collection is stored under.
const DefaultKey = "todoLists"

type implCache struct {
	mu   sync.Mutex
	path string
	key  string
	l    pkgLog.Logger
}

// New creates a SnapshotCache stored in a JSON file of string keys. The
// collection lives under key; other keys in the file are left alone.
func New(path, key string, l pkgLog.Logger) repository.SnapshotCache {
	if key == "" {
		key = DefaultKey
	}
	return &implCache{path: path, key: key, l: l}
}

func (c *implCache) Read(ctx context.Context) ([]model.TodoList, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return nil, false, err
	}
	raw, ok := entries[c.key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false, nil
	}

	var lists []model.TodoList
	if err := json.Unmarshal(raw, &lists); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached %q: %w", c.key, err)
	}
	c.l.Debugf(ctx, "filecache: read %d lists from %s", len(lists), c.path)
	return lists, true, nil
}

func (c *implCache) Write(ctx context.Context, lists []model.TodoList) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		// A corrupt file is overwritten rather than blocking every later write.
		c.l.Warnf(ctx, "filecache: discarding unreadable cache %s: %v", c.path, err)
		entries = map[string]json.RawMessage{}
	}

	if lists == nil {
		lists = []model.TodoList{}
	}
	raw, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("marshal lists: %w", err)
	}
	entries[c.key] = raw

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	return c.writeAtomic(data)
}

func (c *implCache) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal cache file: %w", err)
	}
	return entries, nil
}

func (c *implCache) writeAtomic(data []byte) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := os.Rename(name, c.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}
