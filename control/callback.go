// Package control provides callback handling utilities, used for
// animation-frame dispatch.
//
// Callbacks are registered in a Registry and stay registered until
// their Handle is released. Registries are not safe for concurrent
// use; each owner dispatches on its own registry.
package control

// Handle identifies a registered callback. Releasing the handle
// unregisters the callback: it will not fire on any later RunAll.
type Handle struct {
	alive *bool
}

// Release unregisters the callback. Releasing an already released or
// zero handle is a no-op.
func (h Handle) Release() {
	if h.alive != nil {
		*h.alive = false
	}
}

func (h Handle) live() bool {
	return h.alive != nil && *h.alive
}

// Registry gathers niladic callbacks. The zero value is ready to use.
type Registry struct {
	callbacks []entry
}

type entry struct {
	handle Handle
	fn     func()
}

// Add registers a callback and returns its handle.
func (r *Registry) Add(fn func()) Handle {
	alive := true
	handle := Handle{alive: &alive}
	r.callbacks = append(r.callbacks, entry{handle: handle, fn: fn})
	return handle
}

// RunAll fires the registered callbacks in registration order.
// Released callbacks are pruned first.
func (r *Registry) RunAll() {
	r.prune()
	for _, e := range r.callbacks {
		e.fn()
	}
}

func (r *Registry) prune() {
	kept := r.callbacks[:0]
	for _, e := range r.callbacks {
		if e.handle.live() {
			kept = append(kept, e)
		}
	}
	r.callbacks = kept
}

// Registry1 gathers callbacks taking one argument.
type Registry1[T any] struct {
	callbacks []entry1[T]
}

type entry1[T any] struct {
	handle Handle
	fn     func(T)
}

// Add registers a callback and returns its handle.
func (r *Registry1[T]) Add(fn func(T)) Handle {
	alive := true
	handle := Handle{alive: &alive}
	r.callbacks = append(r.callbacks, entry1[T]{handle: handle, fn: fn})
	return handle
}

// RunAll fires the registered callbacks in registration order,
// passing t to each. Released callbacks are pruned first.
func (r *Registry1[T]) RunAll(t T) {
	r.prune()
	for _, e := range r.callbacks {
		e.fn(t)
	}
}

func (r *Registry1[T]) prune() {
	kept := r.callbacks[:0]
	for _, e := range r.callbacks {
		if e.handle.live() {
			kept = append(kept, e)
		}
	}
	r.callbacks = kept
}
