// Package box implements a uniquely owned, heap-allocated single-value
// container and its in-place mapping operations.
//
// Common usage:
// - New/NewIn: allocate a box holding one value
// - Map: transform the value with a type-changing function, reusing the
//   allocation whenever the new layout fits within the old block
// - TryMap: same operation for transforms that fail by returning an error
// - Update: fluent same-type transform, always in place
// - Into/Free: move the value out or drop the box
//
// A box is consumed by Map, TryMap, Into and Free; later operations on it
// fail with ErrConsumed. If a transform panics, the box's block is freed
// during unwind and the panic continues: no box of either type survives,
// nothing leaks, nothing is freed twice.
package box
