package bip

import "testing"

func TestHasPointers_PlainData(t *testing.T) {
	t.Parallel()
	type flat struct {
		A int64
		B [4]float32
		C struct{ X, Y uint8 }
	}

	if HasPointers[int]() {
		t.Fatalf("int should not have pointers")
	}
	if HasPointers[[16]byte]() {
		t.Fatalf("[16]byte should not have pointers")
	}
	if HasPointers[flat]() {
		t.Fatalf("flat struct should not have pointers")
	}
	if HasPointers[[0]*int]() {
		t.Fatalf("zero-length array stores nothing, so no pointers")
	}
}

func TestHasPointers_ReferenceKinds(t *testing.T) {
	t.Parallel()
	type nested struct {
		A int
		B struct{ P *int }
	}

	if !HasPointers[*int]() {
		t.Fatalf("*int has pointers")
	}
	if !HasPointers[string]() {
		t.Fatalf("string has pointers")
	}
	if !HasPointers[[]byte]() {
		t.Fatalf("[]byte has pointers")
	}
	if !HasPointers[map[int]int]() {
		t.Fatalf("map has pointers")
	}
	if !HasPointers[chan int]() {
		t.Fatalf("chan has pointers")
	}
	if !HasPointers[func()]() {
		t.Fatalf("func has pointers")
	}
	if !HasPointers[any]() {
		t.Fatalf("interface has pointers")
	}
	if !HasPointers[nested]() {
		t.Fatalf("struct with nested pointer field has pointers")
	}
	if !HasPointers[[2]*int]() {
		t.Fatalf("array of pointers has pointers")
	}
}
