// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// MaxDepth bounds how many contexts can be open on one Stack at a time.
const MaxDepth = 16

// BackingAllocator supplies the buffer behind a new context. It is the
// stack's only external collaborator; the default allocates from the Go
// heap.
type BackingAllocator func(size int) ([]byte, error)

func heapAllocator(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Stack manages nested allocation scopes for a single goroutine. A
// caller opens a context, bump-allocates any number of times against
// it, optionally nests further contexts, and destroys its own context
// to release everything opened at or above it.
//
// A Stack is not safe for concurrent use. Correctness across
// goroutines comes from isolation: each goroutine owns its own Stack
// (use a Pool to recycle them), and no state ever crosses goroutine
// boundaries.
type Stack struct {
	arenas [MaxDepth]arena
	depth  int
	peak   int

	newBuffer BackingAllocator
	log       hclog.Logger
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sets the logger used for context lifecycle and allocation
// failure events. The default logger discards everything.
func WithLogger(log hclog.Logger) Option {
	return func(s *Stack) {
		s.log = log
	}
}

// WithBackingAllocator replaces the allocator used to obtain each
// context's backing buffer.
func WithBackingAllocator(f BackingAllocator) Option {
	return func(s *Stack) {
		s.newBuffer = f
	}
}

// NewStack creates an empty Stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		newBuffer: heapAllocator,
		log:       hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateContext pushes a fresh context of exactly size bytes and
// returns its identifier, the stack depth at creation (0-based). All
// subsequent allocations target this context until it is destroyed or
// a deeper context is created.
//
// It returns ErrStackFull when MaxDepth contexts are already open, and
// ErrBackingAlloc when the backing allocator fails. Either way the
// stack is left unchanged. A negative size behaves like 0.
func (s *Stack) CreateContext(size int) (int, error) {
	if size < 0 {
		size = 0
	}
	if s.depth == MaxDepth {
		return 0, errors.Wrapf(ErrStackFull, "%d contexts open", s.depth)
	}
	buf, err := s.newBuffer(size)
	if err != nil {
		return 0, errors.Wrapf(ErrBackingAlloc, "requesting %d bytes: %s", size, err)
	}
	id := s.depth
	s.arenas[id] = arena{buf: buf}
	s.depth++
	s.log.Debug("context created", "id", id, "size", size)
	return id, nil
}

// Alloc reserves size bytes in the current context and returns them as
// a slice of exactly that length and capacity. The reservation is
// valid until the context is reset or destroyed.
//
// It returns ErrNoContext when the stack is empty and
// ErrCapacityExceeded when the current context cannot fit the request.
// Lower contexts are never consulted: capacity exhaustion is a hard
// boundary per context. A negative size behaves like 0.
func (s *Stack) Alloc(size int) ([]byte, error) {
	return s.allocAligned(size, 1)
}

func (s *Stack) allocAligned(size, align int) ([]byte, error) {
	if size < 0 {
		size = 0
	}
	if s.depth == 0 {
		return nil, ErrNoContext
	}
	top := &s.arenas[s.depth-1]
	b, ok := top.alloc(size, align)
	if !ok {
		s.log.Trace("allocation rejected", "size", size, "available", top.available())
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d bytes requested, %d available", size, top.available())
	}
	if live := s.liveBytes(); live > s.peak {
		s.peak = live
	}
	return b, nil
}

// ResetCurrent rewinds the current context to empty without releasing
// its backing buffer. Every slice previously returned from this
// context becomes invalid for further use; honoring that is the
// caller's contract, not enforced. No-op on an empty stack.
func (s *Stack) ResetCurrent() {
	if s.depth == 0 {
		return
	}
	s.arenas[s.depth-1].reset()
}

// DestroyContext releases context id and every context created after
// it that is still open, popping from the top down through id. A
// caller that forgot to destroy an inner nested context is cleaned up
// when an outer caller destroys its own.
//
// Calling it on an empty stack, or with an id at or above the current
// depth, is a no-op. A negative id behaves like 0. Identifiers are
// never revived: after its context is destroyed, an id only becomes
// meaningful again once new creates reach that depth.
func (s *Stack) DestroyContext(id int) {
	if id < 0 {
		id = 0
	}
	for s.depth > id {
		s.depth--
		s.arenas[s.depth].release()
		s.log.Debug("context destroyed", "id", s.depth)
	}
}

// DestroyAll releases every open context. Call it (directly or via
// Pool.Release) before abandoning a Stack if deterministic release
// matters; an abandoned Stack is otherwise reclaimed by the garbage
// collector along with its buffers.
func (s *Stack) DestroyAll() {
	s.DestroyContext(0)
}

// Depth returns the number of open contexts.
func (s *Stack) Depth() int {
	return s.depth
}

// Len returns the number of bytes allocated in the current context,
// or 0 if the stack is empty.
func (s *Stack) Len() int {
	if s.depth == 0 {
		return 0
	}
	return s.arenas[s.depth-1].offset
}

// Cap returns the capacity of the current context, or 0 if the stack
// is empty.
func (s *Stack) Cap() int {
	if s.depth == 0 {
		return 0
	}
	return len(s.arenas[s.depth-1].buf)
}

// Peak returns the high-water mark of bytes allocated across all open
// contexts at once. It is not reduced by ResetCurrent or
// DestroyContext, allowing tracking of maximum usage over the stack's
// lifetime.
func (s *Stack) Peak() int {
	return s.peak
}

func (s *Stack) liveBytes() int {
	total := 0
	for i := 0; i < s.depth; i++ {
		total += s.arenas[i].offset
	}
	return total
}
