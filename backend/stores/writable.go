package stores

import "sync"

// Writable holds a value and notifies subscribers whenever it is replaced.
//
// Mutations and subscriptions are serialized by writeMu, which is held until
// every listener has returned, so listeners see replacements in the order
// they happened. mu only guards the value and listener list; it is always
// taken after writeMu, and listeners may call Get. A listener must not call
// Set, Update or Subscribe on the same Writable.
type Writable[T any] struct {
	writeMu   sync.Mutex
	mu        sync.Mutex
	value     T
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

func (w *Writable[T]) Set(value T) {
	w.Update(func(T) T { return value })
}

// Update replaces the value with fn(current). fn runs under the lock.
func (w *Writable[T]) Update(fn func(T) T) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	w.value = fn(w.value)
	value := w.value
	listeners := append([]listener[T](nil), w.listeners...)
	w.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}
}

// Subscribe calls fn with the current value, then again after every change.
// The returned func removes the subscription and is safe to call twice.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	w.writeMu.Lock()
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, listener[T]{id: id, fn: fn})
	value := w.value
	w.mu.Unlock()

	fn(value)
	w.writeMu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, l := range w.listeners {
			if l.id == id {
				w.listeners = append(w.listeners[:i:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}
