// Package watch provides a small observable cell, useful for views
// reflecting state owned elsewhere.
package watch

import "sync"

// Value holds a T and notifies registered watchers on every change.
//
// Watchers run on the goroutine calling Set, outside the value lock,
// so a watcher may read the value again without deadlocking.
type Value[T any] struct {
	mu    sync.Mutex
	value T

	wmu      sync.Mutex
	watchers []func(T)
}

// NewValue creates a cell with the given initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores a new value and notifies watchers.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	v.mu.Unlock()
	v.notify(value)
}

// Update applies f to the current value and notifies watchers.
func (v *Value[T]) Update(f func(T) T) {
	v.mu.Lock()
	v.value = f(v.value)
	value := v.value
	v.mu.Unlock()
	v.notify(value)
}

// Watch registers a callback invoked with every new value.
func (v *Value[T]) Watch(f func(T)) {
	v.wmu.Lock()
	v.watchers = append(v.watchers, f)
	v.wmu.Unlock()
}

func (v *Value[T]) notify(value T) {
	v.wmu.Lock()
	watchers := make([]func(T), len(v.watchers))
	copy(watchers, v.watchers)
	v.wmu.Unlock()

	for _, f := range watchers {
		f(value)
	}
}
