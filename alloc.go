// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"unsafe"
)

const growThreshold = 256

// New allocates memory for a value of type T from the stack's current
// context and returns a pointer to a zeroed T. Unlike raw Alloc, the
// reservation is padded to T's natural alignment; the padding counts
// against the context's capacity.
//
// T must not contain pointers: the garbage collector does not trace
// context memory, so a pointer stored there keeps nothing alive.
func New[T any](s *Stack) (*T, error) {
	var x T
	size := int(unsafe.Sizeof(x))
	if size == 0 {
		return &x, nil
	}
	b, err := s.allocAligned(size, int(unsafe.Alignof(x)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// MakeSlice allocates a zeroed slice of type T with the given length
// and capacity from the stack's current context. The same pointer
// caveat as New applies.
func MakeSlice[T any](s *Stack, length, capacity int) ([]T, error) {
	if capacity < length {
		capacity = length
	}
	var x T
	elem := int(unsafe.Sizeof(x))
	if elem == 0 || capacity == 0 {
		return make([]T, length, capacity), nil
	}
	b, err := s.allocAligned(elem*capacity, int(unsafe.Alignof(x)))
	if err != nil {
		return nil, err
	}
	clear(b)
	out := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), capacity)
	return out[:length], nil
}

// Append appends elems to dst, re-allocating dst from the stack's
// current context when it must grow. The abandoned smaller backing is
// not reclaimed until the context is reset or destroyed, which is the
// usual bump-allocator trade. Growth fails with ErrCapacityExceeded
// once the grown slice no longer fits in the context.
func Append[T any](s *Stack, dst []T, elems ...T) ([]T, error) {
	if len(elems) == 0 {
		return dst, nil
	}
	if len(dst)+len(elems) <= cap(dst) {
		return append(dst, elems...), nil
	}
	grown, err := growSlice(s, dst, len(elems))
	if err != nil {
		return nil, err
	}
	return append(grown, elems...), nil
}

func growSlice[T any](s *Stack, dst []T, n int) ([]T, error) {
	newLen := len(dst) + n
	newCap := cap(dst)
	if newCap > 0 {
		for newLen > newCap {
			if newCap < growThreshold {
				newCap *= 2
			} else {
				newCap += newCap / 4
			}
		}
	} else {
		newCap = n
	}
	s2, err := MakeSlice[T](s, len(dst), newCap)
	if err != nil {
		return nil, err
	}
	copy(s2, dst)
	return s2, nil
}
