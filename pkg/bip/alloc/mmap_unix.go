//go:build unix

package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ib-77/bip/pkg/bip"
)

// Mmap allocates page-granular blocks from anonymous private mappings. Pages
// go back to the OS on Deallocate instead of to the Go heap, keeping large
// boxes out of GC heap growth entirely.
type Mmap struct {
	mu       sync.Mutex
	pageSize uintptr
	mappings map[uintptr][]byte
}

func NewMmap() *Mmap {
	return &Mmap{
		pageSize: uintptr(unix.Getpagesize()),
		mappings: make(map[uintptr][]byte),
	}
}

func (m *Mmap) Allocate(l bip.Layout) (unsafe.Pointer, error) {
	if l.Size == 0 {
		return nil, ErrZeroSize
	}
	if l.Align == 0 || l.Align&(l.Align-1) != 0 || l.Align > m.pageSize {
		return nil, fmt.Errorf("%w: %d (page size %d)", ErrAlignment, l.Align, m.pageSize)
	}

	n := int(bip.AlignUp(l.Size, m.pageSize))
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrExhausted, n, err)
	}
	p := unsafe.Pointer(unsafe.SliceData(data))

	m.mu.Lock()
	m.mappings[uintptr(p)] = data
	m.mu.Unlock()
	return p, nil
}

func (m *Mmap) Deallocate(p unsafe.Pointer, l bip.Layout) {
	m.mu.Lock()
	data, ok := m.mappings[uintptr(p)]
	if ok {
		delete(m.mappings, uintptr(p))
	}
	m.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("alloc: munmap of unknown or already freed block %#x (%v)", uintptr(p), l))
	}
	if err := unix.Munmap(data); err != nil {
		panic(fmt.Sprintf("alloc: munmap: %v", err))
	}
}

// Live returns the number of outstanding mappings.
func (m *Mmap) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.mappings)
}
