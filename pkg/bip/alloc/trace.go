package alloc

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/google/uuid"

	"github.com/ib-77/bip/pkg/bip"
)

// Record describes one live block handed out through a Trace.
type Record struct {
	ID     uuid.UUID
	Layout bip.Layout
	At     time.Time
}

// Trace wraps an Allocator with per-block records and counters, for tests
// and leak hunting. A double or foreign free, or a free whose layout does
// not match the allocation, panics before reaching the wrapped allocator.
type Trace struct {
	mu      sync.Mutex
	inner   bip.Allocator
	allocs  uint64
	frees   uint64
	records map[uintptr]Record
}

// NewTrace wraps inner; a nil inner wraps Default.
func NewTrace(inner bip.Allocator) *Trace {
	if inner == nil {
		inner = Default
	}
	return &Trace{inner: inner, records: make(map[uintptr]Record)}
}

func (t *Trace) Allocate(l bip.Layout) (unsafe.Pointer, error) {
	p, err := t.inner.Allocate(l)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.allocs++
	t.records[uintptr(p)] = Record{
		ID:     uuid.New(),
		Layout: l,
		At:     time.Now().UTC(),
	}
	t.mu.Unlock()
	return p, nil
}

func (t *Trace) Deallocate(p unsafe.Pointer, l bip.Layout) {
	t.mu.Lock()
	rec, ok := t.records[uintptr(p)]
	if ok {
		delete(t.records, uintptr(p))
		t.frees++
	}
	t.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("alloc: double or foreign free %#x (%v)", uintptr(p), l))
	}
	if rec.Layout != l {
		panic(fmt.Sprintf("alloc: free layout %v does not match allocation %v", l, rec.Layout))
	}
	t.inner.Deallocate(p, l)
}

// Allocs returns the number of Allocate calls that succeeded.
func (t *Trace) Allocs() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the number of Deallocate calls that succeeded.
func (t *Trace) Frees() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Live returns the number of outstanding blocks.
func (t *Trace) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// LiveBytes returns the total requested size of outstanding blocks.
func (t *Trace) LiveBytes() uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n uintptr
	for _, rec := range t.records {
		n += rec.Layout.Size
	}
	return n
}

// Records returns a snapshot of the outstanding blocks.
func (t *Trace) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, rec)
	}
	return out
}
