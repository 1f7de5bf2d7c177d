package bip

import (
	"fmt"
	"unsafe"
)

// Layout is the (size, alignment) pair describing how a value is stored in
// memory. Align is always a power of two for Go types.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of T.
func Of[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

// FitsWithin reports whether a value with layout l can live in a block that
// was allocated with layout block. Shrinking or equal-fitting is safe;
// growing or requiring stricter alignment is not.
func (l Layout) FitsWithin(block Layout) bool {
	return l.Size <= block.Size && l.Align <= block.Align
}

// IsZero reports whether the layout describes a zero-sized value.
func (l Layout) IsZero() bool {
	return l.Size == 0
}

func (l Layout) String() string {
	return fmt.Sprintf("layout{size=%d align=%d}", l.Size, l.Align)
}

// AlignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
