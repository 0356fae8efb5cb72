// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"unsafe"
)

// arena is a single fixed-capacity bump region. Memory is handed out as
// subslices of buf and reclaimed only in bulk, by reset or release.
type arena struct {
	buf    []byte
	offset int // next free byte, 0 <= offset <= len(buf)
}

// alloc reserves size bytes at the given alignment. Padding is computed
// from the buffer's actual base address, so the returned memory is
// aligned even when the backing buffer itself is not. The returned
// slice has its capacity clipped to the reservation so an append cannot
// bleed into a neighboring allocation. The offset is left untouched
// when the request does not fit.
func (a *arena) alloc(size, align int) ([]byte, bool) {
	pad := 0
	if align > 1 {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + uintptr(a.offset)
		if rem := int(addr % uintptr(align)); rem != 0 {
			pad = align - rem
		}
	}
	if a.available() < pad+size {
		return nil, false
	}
	start := a.offset + pad
	a.offset = start + size
	return a.buf[start:a.offset:a.offset], true
}

// reset rewinds the arena without releasing its buffer. Previously
// returned slices now alias future allocations; contents are not
// re-zeroed.
func (a *arena) reset() {
	a.offset = 0
}

// release drops the backing buffer.
func (a *arena) release() {
	a.offset = 0
	a.buf = nil
}

func (a *arena) available() int {
	return len(a.buf) - a.offset
}
