package lazyarena

import (
	"sync"
	"weak"
)

// Pool is a concurrency-safe pool of Stack instances for workloads that
// spawn many short-lived goroutines. Pooled stacks are held through
// weak pointers, so the GC can discard them under memory pressure and
// the pool sizes itself to actual demand.
//
// The pool hands out whole stacks; the stack a goroutine acquires is
// still exclusively its own until released.
type Pool struct {
	mu   sync.Mutex
	pool []weak.Pointer[Stack]
	opts []Option
}

// NewPool creates a Pool. The options are applied to every Stack the
// pool constructs.
func NewPool(opts ...Option) *Pool {
	return &Pool{opts: opts}
}

// Acquire returns a pooled Stack or constructs a new one. The returned
// stack has no open contexts.
func (p *Pool) Acquire() *Stack {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.pool) > 0 {
		last := len(p.pool) - 1
		wp := p.pool[last]
		p.pool = p.pool[:last]
		if s := wp.Value(); s != nil {
			return s
		}
		// collected by the GC, keep popping
	}
	return NewStack(p.opts...)
}

// Release destroys every context still open on s and returns it to the
// pool. The caller must not use s afterwards.
func (p *Pool) Release(s *Stack) {
	s.DestroyAll()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pool = append(p.pool, weak.Make(s))
}

// ReleaseMany releases a batch of stacks under a single lock
// acquisition.
func (p *Pool) ReleaseMany(stacks []*Stack) {
	for _, s := range stacks {
		s.DestroyAll()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range stacks {
		p.pool = append(p.pool, weak.Make(s))
	}
}
