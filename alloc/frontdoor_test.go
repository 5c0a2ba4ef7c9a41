package alloc

import (
	"errors"
	"testing"
)

func TestFrontDoorAllocateInvalidSize(t *testing.T) {
	h := Create[Heap]()
	_, err := Allocate(h, -1)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestFrontDoorAllocateZeroSize(t *testing.T) {
	h := Create[Heap]()
	b, err := Allocate(h, 0)
	if err != nil {
		t.Errorf("Allocate(0) should not error, got %v", err)
	}
	if !b.Empty() {
		t.Error("Allocate(0) should return an empty Block")
	}
}

func TestFrontDoorAllocateUnknownOnFailure(t *testing.T) {
	a := NewArena(16)
	_, err := Allocate(a, 1000)
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown when the policy can't satisfy the request, got %v", err)
	}
}

func TestFrontDoorAllocateSuccess(t *testing.T) {
	h := Create[Heap]()
	b, err := Allocate(h, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Empty() {
		t.Fatal("expected a non-empty Block")
	}

	Deallocate(h, &b)
	if !b.Empty() {
		t.Error("Deallocate should empty the caller's Block")
	}
}

func TestFrontDoorOwns(t *testing.T) {
	h := Create[Heap]()
	b, _ := Allocate(h, 8)
	if !Owns(h, b) {
		t.Error("Owns should forward to the allocator's own Owns")
	}
}
