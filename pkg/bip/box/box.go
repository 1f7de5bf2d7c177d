package box

import (
	"fmt"
	"unsafe"

	"github.com/ib-77/bip/pkg/bip"
	"github.com/ib-77/bip/pkg/bip/alloc"
)

// zeroBase is the address shared by all zero-sized boxes. A live box always
// carries a non-nil address, so liveness and zero-sizedness stay independent.
var zeroBase struct{}

// Box is a uniquely owned, heap-allocated cell holding exactly one T. The
// block's allocation-time layout travels separately from T: a block reused
// across types must still be freed with the layout it was allocated with.
type Box[T any] struct {
	ptr   unsafe.Pointer
	block bip.Layout
	mem   bip.Allocator
}

// New allocates a box holding v on the default heap allocator.
func New[T any](v T) (*Box[T], error) {
	return NewIn(alloc.Default, v)
}

// NewIn allocates a box holding v on a. Zero-sized types never touch the
// allocator.
func NewIn[T any](a bip.Allocator, v T) (*Box[T], error) {
	if bip.HasPointers[T]() {
		return nil, fmt.Errorf("%w: %T", ErrPointerData, v)
	}
	l := bip.Of[T]()
	if l.IsZero() {
		return &Box[T]{ptr: unsafe.Pointer(&zeroBase), block: l, mem: a}, nil
	}
	p, err := a.Allocate(l)
	if err != nil {
		return nil, err
	}
	*(*T)(p) = v
	return &Box[T]{ptr: p, block: l, mem: a}, nil
}

// Get returns a pointer to the boxed value. It panics on a consumed box.
func (b *Box[T]) Get() *T {
	if b == nil || b.ptr == nil {
		panic("box: use after consume")
	}
	return (*T)(b.ptr)
}

// Addr returns the address of the boxed value, for identity checks.
func (b *Box[T]) Addr() uintptr {
	return uintptr(b.ptr)
}

// Live reports whether the box still owns its value.
func (b *Box[T]) Live() bool {
	return b != nil && b.ptr != nil
}

// Into moves the value out and releases the block.
func (b *Box[T]) Into() (T, error) {
	p, blk, mem, err := b.take()
	if err != nil {
		var zero T
		return zero, err
	}
	v := *(*T)(p)
	if !blk.IsZero() {
		mem.Deallocate(p, blk)
	}
	return v, nil
}

// Free drops the box in place. Freeing a consumed box is a no-op.
func (b *Box[T]) Free() {
	p, blk, mem, err := b.take()
	if err != nil {
		return
	}
	if !blk.IsZero() {
		mem.Deallocate(p, blk)
	}
}

// take transfers ownership of the block out of the box, leaving it consumed.
func (b *Box[T]) take() (unsafe.Pointer, bip.Layout, bip.Allocator, error) {
	if b == nil || b.ptr == nil {
		return nil, bip.Layout{}, nil, ErrConsumed
	}
	p, blk, mem := b.ptr, b.block, b.mem
	b.ptr = nil
	return p, blk, mem, nil
}
