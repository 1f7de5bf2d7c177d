// Package bip (box in place) holds the core types for in-place mapping of
// uniquely owned, heap-allocated single-value containers: the Layout pair,
// the Allocator collaborator interface, and type introspection helpers.
//
// Common usage:
// - Layout/Of: describe how a value is stored (size, alignment)
// - FitsWithin: the reuse rule deciding in-place vs. reallocate
// - Allocator: the allocate/deallocate contract implementations satisfy
// - HasPointers: gate for types that may live in allocator memory
//
// Implementations of Allocator live in package alloc; the box container
// and its mapping operations live in package box.
package bip
