package box

import "errors"

var (
	// ErrConsumed indicates an operation on a box whose value has already
	// been moved out.
	ErrConsumed = errors.New("box: already consumed")

	// ErrPointerData indicates a type holding GC-visible references, which
	// cannot live in allocator memory.
	ErrPointerData = errors.New("box: type contains Go references")
)
