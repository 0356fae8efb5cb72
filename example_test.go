// SPDX-License-Identifier: Apache-2.0

package lazyarena_test

import (
	"fmt"

	lazyarena "github.com/lazykit/go-lazyarena"
)

// A worker opens its own context, a nested helper opens another and
// forgets to destroy it, and the worker's destroy sweeps both away.
func Example_nestedScopes() {
	s := lazyarena.NewStack()

	id, _ := s.CreateContext(1024)
	n, _ := lazyarena.New[int](s)
	*n = 100
	fmt.Println("worker allocated:", *n)

	forgetfulHelper(s)

	fmt.Println("open contexts:", s.Depth())
	s.DestroyContext(id)
	fmt.Println("open contexts after destroy:", s.Depth())

	// Output:
	// worker allocated: 100
	// helper allocated: 42
	// open contexts: 2
	// open contexts after destroy: 0
}

func forgetfulHelper(s *lazyarena.Stack) {
	s.CreateContext(512)
	n, _ := lazyarena.New[int](s)
	*n = 42
	fmt.Println("helper allocated:", *n)
	// no DestroyContext here, on purpose
}

func ExampleBuffer() {
	s := lazyarena.NewStack()
	defer s.DestroyAll()
	s.CreateContext(256)

	buf := lazyarena.NewBuffer(s)
	fmt.Fprintf(buf, "hello %s", "arena")
	fmt.Println(buf.String())
	// Output: hello arena
}

func ExampleStack_Alloc() {
	s := lazyarena.NewStack()
	defer s.DestroyAll()
	s.CreateContext(100)

	b, _ := s.Alloc(10)
	fmt.Println("got", len(b), "bytes,", s.Cap()-s.Len(), "remaining")

	_, err := s.Alloc(1000)
	fmt.Println("oversized request fails:", err != nil)

	// Output:
	// got 10 bytes, 90 remaining
	// oversized request fails: true
}
