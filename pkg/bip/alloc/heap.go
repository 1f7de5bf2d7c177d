package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ib-77/bip/pkg/bip"
)

// Heap is a general-purpose allocator backed by the Go runtime. Every block
// handed out stays pinned in an internal registry until Deallocate, so the
// runtime cannot reclaim it underneath the caller; the registry doubles as
// the double-free assertion.
type Heap struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
}

// Default is the process-wide heap allocator boxes use unless told otherwise.
var Default = NewHeap()

func NewHeap() *Heap {
	return &Heap{blocks: make(map[uintptr][]byte)}
}

func (h *Heap) Allocate(l bip.Layout) (unsafe.Pointer, error) {
	if l.Size == 0 {
		return nil, ErrZeroSize
	}
	if l.Align == 0 || l.Align&(l.Align-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrAlignment, l.Align)
	}

	// Over-allocate so an aligned address always exists inside the block.
	buf := make([]byte, l.Size+l.Align-1)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	p := unsafe.Add(base, bip.AlignUp(uintptr(base), l.Align)-uintptr(base))

	h.mu.Lock()
	h.blocks[uintptr(p)] = buf
	h.mu.Unlock()
	return p, nil
}

func (h *Heap) Deallocate(p unsafe.Pointer, l bip.Layout) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.blocks[uintptr(p)]; !ok {
		panic(fmt.Sprintf("alloc: free of unknown or already freed block %#x (%v)", uintptr(p), l))
	}
	delete(h.blocks, uintptr(p))
}

// Live returns the number of outstanding blocks.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}
