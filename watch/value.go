// Package watch provides a minimal latest-value observable: subscribers
// receive the current value synchronously on subscribe and every value set
// afterwards. There is no buffering beyond the latest value and a Value never
// completes or errors; it lives as long as its owner.
package watch

import "sync"

// Value holds one current value and a registry of subscriber callbacks.
// The zero value is unusable; construct via NewValue.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]func(T)
	nextID  int
}

// NewValue creates a Value seeded with initial. Subscribers registered before
// any Set observe initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]func(T)),
	}
}

// Get returns the latest value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set stores val and delivers it synchronously to every subscriber, in
// unspecified order. Delivery happens outside the internal lock so callbacks
// may call back into the Value.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.current = val
	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(val)
	}
}

// Subscribe registers fn and immediately delivers the current value to it.
// The returned cancel function removes the subscription; it is idempotent.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	current := v.current
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}
