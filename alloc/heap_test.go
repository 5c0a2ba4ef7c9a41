package alloc

import (
	"testing"

	"memkit/block"
)

func TestHeapAllocateRoundTrip(t *testing.T) {
	h := NewHeap()

	b := h.Allocate(32)
	if b.Empty() {
		t.Fatal("Allocate(32) should not be empty")
	}
	if b.Size != 32 {
		t.Errorf("expected size 32, got %d", b.Size)
	}
	if !h.Owns(b) {
		t.Error("Heap should own a Block it just produced")
	}

	h.Deallocate(&b)
	if !b.Empty() {
		t.Error("Deallocate should empty the caller's Block")
	}
}

func TestHeapZeroAndNegativeSize(t *testing.T) {
	h := NewHeap()
	if !h.Allocate(0).Empty() {
		t.Error("Allocate(0) should be empty")
	}
	if !h.Allocate(-1).Empty() {
		t.Error("Allocate(-1) should be empty")
	}
}

func TestHeapDeallocateEmptyIsNoop(t *testing.T) {
	h := NewHeap()
	var b block.Block
	h.Deallocate(&b)
	if !b.Empty() {
		t.Error("deallocating an empty Block should remain empty")
	}
}

func TestHeapOwnsIsPermissive(t *testing.T) {
	h1 := NewHeap()
	h2 := NewHeap()
	b := h1.Allocate(8)
	if !h2.Owns(b) {
		t.Error("Heap.Owns should be permissive across instances: it has no per-instance state")
	}
}
