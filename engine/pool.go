package engine

// Pool hands out reusable instances of spawnable effects (decals, shells, projectiles)
// Not safe for concurrent use; owned by the tick goroutine
type Pool[T any] struct {
	newFn   func() T
	resetFn func(T)
	free    []T

	created int
}

// NewPool creates a pool; reset may be nil
func NewPool[T any](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{newFn: newFn, resetFn: reset}
}

// Get returns a free instance or a new one
func (p *Pool[T]) Get() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free = p.free[:n-1]
		return v
	}
	p.created++
	return p.newFn()
}

// Return resets v and makes it available again
func (p *Pool[T]) Return(v T) {
	if p.resetFn != nil {
		p.resetFn(v)
	}
	p.free = append(p.free, v)
}

// Free returns the number of idle instances
func (p *Pool[T]) Free() int { return len(p.free) }

// Created returns the total instances allocated by the pool
func (p *Pool[T]) Created() int { return p.created }
