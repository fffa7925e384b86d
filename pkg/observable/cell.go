// Package observable provides a latest-value cell with synchronous listeners.
package observable

import "sync"

// Cell holds one value and notifies listeners whenever it changes.
//
// A listener is called with the current value when it subscribes and then
// once per Publish, in publish order. Listeners run on the publishing
// goroutine and must not call Publish or Subscribe on the same Cell.
type Cell[T any] struct {
	deliver sync.Mutex // serializes Subscribe and Publish

	mu        sync.Mutex
	value     T
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// NewCell returns a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Publish replaces the value and notifies every listener.
func (c *Cell[T]) Publish(v T) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	c.value = v
	ls := make([]listener[T], len(c.listeners))
	copy(ls, c.listeners)
	c.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
}

// Subscribe registers fn and immediately calls it with the current value.
// The returned func removes the listener; calling it more than once is safe.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	v := c.value
	c.mu.Unlock()

	fn(v)

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(id) })
	}
}

// Len reports the number of registered listeners.
func (c *Cell[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

func (c *Cell[T]) remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return
		}
	}
}
