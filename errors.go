// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"github.com/pkg/errors"
)

// Allocation failures are ordinary, recoverable conditions. The caller
// decides whether to retry with a smaller request, open a new context,
// or bail out; nothing here is fatal to the stack itself.
var (
	// ErrStackFull is returned by CreateContext when MaxDepth contexts
	// are already open.
	ErrStackFull = errors.New("lazyarena: context stack full")

	// ErrBackingAlloc is returned by CreateContext when the backing
	// allocator cannot supply a buffer for the new context.
	ErrBackingAlloc = errors.New("lazyarena: backing allocation failed")

	// ErrCapacityExceeded is returned when a request does not fit in
	// the remaining space of the current context.
	ErrCapacityExceeded = errors.New("lazyarena: context capacity exceeded")

	// ErrNoContext is returned by allocation calls made with no open
	// context on the stack.
	ErrNoContext = errors.New("lazyarena: no open context")
)
