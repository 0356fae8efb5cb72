// SPDX-License-Identifier: Apache-2.0

// Package lazyarena implements a nested bump allocator: a per-goroutine
// stack of fixed-size memory arenas, each one a lexical allocation
// scope called a context.
//
// A routine opens a context sized for its scratch work, allocates
// freely against it, and destroys it on the way out. Contexts nest, and
// destroying a context also destroys every context opened after it, so
// a helper that forgot to clean up its own scope is swept away when its
// caller cleans up:
//
//	s := lazyarena.NewStack()
//	id, _ := s.CreateContext(1024)
//	buf, _ := s.Alloc(256)   // scratch space, freed in bulk below
//	helper(s)                // may open (and even leak) nested contexts
//	s.DestroyContext(id)     // releases this context and any leaked ones
//
// There is no individual free and contexts never grow: an allocation
// that does not fit the current context fails, and the caller either
// opens a sized nested context or handles the error. ResetCurrent
// rewinds the current context for reuse without releasing its buffer.
//
// A Stack is single-goroutine by design; share nothing, and recycle
// stacks across goroutines with a Pool.
package lazyarena
