package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces client-side ids for new lists and tasks.
type IDGenerator interface {
	ListID() string
	TaskID() int64
}

type clockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDs returns ids derived from the wall clock: UUIDv7 strings for
// lists and millisecond timestamps for tasks. Task ids never repeat within
// one process even when two are requested in the same millisecond.
func NewClockIDs() IDGenerator {
	return &clockIDs{now: time.Now}
}

func (g *clockIDs) ListID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (g *clockIDs) TaskID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
