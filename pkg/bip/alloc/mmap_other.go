//go:build !unix

package alloc

// Mmap delegates to a private heap where anonymous mappings are not
// available, mirroring the unix variant's behavior block for block.
type Mmap struct {
	Heap
}

func NewMmap() *Mmap {
	return &Mmap{Heap: Heap{blocks: make(map[uintptr][]byte)}}
}
