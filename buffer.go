// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"io"
)

// Buffer is a bytes.Buffer-like writer whose storage is carved from a
// Stack's current context. Unlike bytes.Buffer, writes are fallible:
// once the context can no longer fit the grown storage, writes return
// ErrCapacityExceeded.
//
// A Buffer belongs to the context that was current when it grew; keep
// it within one context's lifetime.
type Buffer struct {
	stack *Stack
	buf   []byte
}

// NewBuffer creates an empty Buffer drawing storage from s.
func NewBuffer(s *Stack) *Buffer {
	return &Buffer{stack: s}
}

// Write implements io.Writer. It appends p to the buffer, growing the
// storage from the stack's current context as needed.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf, err := Append(b.stack, b.buf, p...)
	if err != nil {
		return 0, err
	}
	b.buf = buf
	return len(p), nil
}

// WriteString appends a string to the buffer.
func (b *Buffer) WriteString(s string) (n int, err error) {
	return b.Write([]byte(s))
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	buf, err := Append(b.stack, b.buf, c)
	if err != nil {
		return err
	}
	b.buf = buf
	return nil
}

// WriteTo implements io.WriterTo, draining the written bytes into w.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	if len(b.buf) == 0 {
		return 0, nil
	}
	m, err := w.Write(b.buf)
	if m > 0 {
		n = int64(m)
		copy(b.buf, b.buf[m:])
		b.buf = b.buf[:len(b.buf)-m]
	}
	return n, err
}

// Bytes returns the written bytes. The slice is valid only until the
// next buffer modification or the owning context's reset/destroy.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the written bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Len returns the number of written bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the buffer's current storage.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset empties the buffer, keeping its storage for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
