// Package alloc provides Allocator implementations for boxes.
//
// Common usage:
// - Heap: general-purpose allocator backed by the Go runtime (alloc.Default)
// - Mmap: page-granular allocator over anonymous mappings on unix
// - Trace: instrumenting wrapper with per-block records and counters
//
// All implementations treat freeing an unknown or already freed block as a
// programmer error and panic; allocation failure is an error return.
package alloc
