// SPDX-License-Identifier: Apache-2.0

package lazyarena

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferWrite(t *testing.T) {
	s := NewStack()
	_, err := s.CreateContext(256)
	require.NoError(t, err)

	b := NewBuffer(s)
	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = b.WriteString(", arena")
	require.NoError(t, err)
	require.Equal(t, 7, n)

	err = b.WriteByte('!')
	require.NoError(t, err)

	require.Equal(t, "hello, arena!", b.String())
	require.Equal(t, []byte("hello, arena!"), b.Bytes())
	require.Equal(t, 13, b.Len())
}

func TestBufferEmptyWrites(t *testing.T) {
	s := NewStack()
	_, err := s.CreateContext(16)
	require.NoError(t, err)

	b := NewBuffer(s)
	n, err := b.Write(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, s.Len())
}

func TestBufferNoContext(t *testing.T) {
	s := NewStack()
	b := NewBuffer(s)
	_, err := b.Write([]byte("x"))
	require.ErrorIs(t, err, ErrNoContext)
}

func TestBufferCapacityExceeded(t *testing.T) {
	s := NewStack()
	_, err := s.CreateContext(8)
	require.NoError(t, err)

	b := NewBuffer(s)
	_, err = b.Write([]byte("12345678"))
	require.NoError(t, err)

	// growth would need 16 bytes from an exhausted context
	_, err = b.Write([]byte("9"))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, "12345678", b.String())
}

func TestBufferWriteTo(t *testing.T) {
	s := NewStack()
	_, err := s.CreateContext(256)
	require.NoError(t, err)

	b := NewBuffer(s)
	_, err = fmt.Fprintf(b, "seq=%d", 42)
	require.NoError(t, err)

	var sink bytes.Buffer
	n, err := b.WriteTo(&sink)
	require.NoError(t, err)
	require.EqualValues(t, 6, n)
	require.Equal(t, "seq=42", sink.String())
	require.Equal(t, 0, b.Len())
}

func TestBufferResetReusesStorage(t *testing.T) {
	s := NewStack()
	_, err := s.CreateContext(64)
	require.NoError(t, err)

	b := NewBuffer(s)
	_, err = b.Write([]byte("scratch"))
	require.NoError(t, err)
	used := s.Len()

	b.Reset()
	require.Equal(t, 0, b.Len())

	// a write that fits the retained storage takes nothing new
	_, err = b.Write([]byte("next"))
	require.NoError(t, err)
	require.Equal(t, used, s.Len())
	require.Equal(t, "next", b.String())
}
