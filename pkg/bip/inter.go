package bip

import "unsafe"

// Allocator is the external memory collaborator boxes are built on.
type Allocator interface {
	// Allocate returns a zeroed block of at least l.Size bytes aligned to
	// l.Align. l.Size must be non-zero.
	Allocate(l Layout) (unsafe.Pointer, error)
	// Deallocate releases a block previously returned by Allocate. It must be
	// called exactly once per block, with the layout the block was allocated
	// with. Freeing an unknown or already freed block panics.
	Deallocate(p unsafe.Pointer, l Layout)
}
