package alloc

import "errors"

var (
	// ErrExhausted indicates the allocator could not satisfy the request.
	ErrExhausted = errors.New("alloc: out of memory")

	// ErrZeroSize indicates a zero-size request; zero-sized values need no storage.
	ErrZeroSize = errors.New("alloc: zero-size allocation")

	// ErrAlignment indicates an alignment the allocator cannot satisfy.
	ErrAlignment = errors.New("alloc: unsupported alignment")
)
