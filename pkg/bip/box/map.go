package box

import (
	"fmt"
	"unsafe"

	"github.com/ib-77/bip/pkg/bip"
)

// Map applies f to the value owned by b, producing a box of the result that
// reuses b's block whenever U's layout fits within it. b is consumed on
// entry; a consumed b fails with ErrConsumed before f runs. If f panics, b's
// block is freed during unwind and the panic continues propagating: no box
// of either type survives. A U containing Go references is rejected with
// ErrPointerData and b is released without calling f. The only failure
// originating here is allocator exhaustion when a larger block is required;
// the old block is still freed exactly once on that path.
func Map[T, U any](b *Box[T], f func(T) U) (*Box[U], error) {
	if bip.HasPointers[U]() {
		var zero U
		b.Free()
		return nil, fmt.Errorf("%w: %T", ErrPointerData, zero)
	}

	p, blk, mem, err := b.take()
	if err != nil {
		return nil, err
	}

	old := *(*T)(p) // the slot is now logically empty

	// Guard: if f unwinds, the block must not outlive the call.
	done := false
	if !blk.IsZero() {
		defer func() {
			if !done {
				mem.Deallocate(p, blk)
			}
		}()
	}

	next := f(old)
	done = true

	return place(mem, p, blk, next)
}

// TryMap is Map for transforms that fail by returning an error instead of
// panicking. An error from f settles memory exactly as a panic would: the
// old block is freed exactly once and the error is returned unwrapped.
func TryMap[T, U any](b *Box[T], f func(T) (U, error)) (*Box[U], error) {
	if bip.HasPointers[U]() {
		var zero U
		b.Free()
		return nil, fmt.Errorf("%w: %T", ErrPointerData, zero)
	}

	p, blk, mem, err := b.take()
	if err != nil {
		return nil, err
	}

	old := *(*T)(p)

	done := false
	if !blk.IsZero() {
		defer func() {
			if !done {
				mem.Deallocate(p, blk)
			}
		}()
	}

	next, err := f(old)
	if err != nil {
		return nil, err // the guard frees the block on the way out
	}
	done = true

	return place(mem, p, blk, next)
}

// Update replaces the boxed value with f of it. The layout cannot change, so
// the address is always stable and no allocator call happens; the panic
// discipline matches Map, leaving b consumed if f unwinds.
func (b *Box[T]) Update(f func(T) T) error {
	p, blk, mem, err := b.take()
	if err != nil {
		return err
	}

	old := *(*T)(p)

	done := false
	if !blk.IsZero() {
		defer func() {
			if !done {
				mem.Deallocate(p, blk)
			}
		}()
	}

	next := f(old)
	done = true

	*(*T)(p) = next
	b.ptr = p
	return nil
}

// place settles ownership of next: in the old block when it fits, in a
// fresh block otherwise. The old block is freed exactly once on every path
// that does not reuse it.
func place[U any](mem bip.Allocator, p unsafe.Pointer, blk bip.Layout, next U) (*Box[U], error) {
	l := bip.Of[U]()

	if l.IsZero() {
		if !blk.IsZero() {
			mem.Deallocate(p, blk)
		}
		return &Box[U]{ptr: unsafe.Pointer(&zeroBase), block: l, mem: mem}, nil
	}

	if !blk.IsZero() && l.FitsWithin(blk) {
		*(*U)(p) = next
		return &Box[U]{ptr: p, block: blk, mem: mem}, nil
	}

	np, err := mem.Allocate(l)
	if err != nil {
		if !blk.IsZero() {
			mem.Deallocate(p, blk)
		}
		return nil, err
	}
	*(*U)(np) = next
	if !blk.IsZero() {
		mem.Deallocate(p, blk)
	}
	return &Box[U]{ptr: np, block: l, mem: mem}, nil
}
