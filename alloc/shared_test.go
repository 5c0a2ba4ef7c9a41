package alloc

import "testing"

func TestSharedInstancesShareOneBackingAllocator(t *testing.T) {
	factory := func() *Arena { return NewArena(128) }

	s1 := NewShared[*Arena]("test-tag-1", factory)
	s2 := NewShared[*Arena]("test-tag-1", factory)

	b := s1.Allocate(32)
	if b.Empty() {
		t.Fatal("s1.Allocate should succeed")
	}
	if !s2.Owns(b) {
		t.Error("a second Shared instance with the same tag should own a Block the first produced")
	}

	s2.Deallocate(&b)
	if !b.Empty() {
		t.Error("s2 should be able to deallocate a Block s1 produced")
	}
}

func TestSharedDistinctTagsAreIndependent(t *testing.T) {
	factory := func() *Arena { return NewArena(64) }

	s1 := NewShared[*Arena]("test-tag-a", factory)
	s2 := NewShared[*Arena]("test-tag-b", factory)

	b := s1.Allocate(16)
	if s2.Owns(b) {
		t.Error("Shared instances with different tags should not share a backing allocator")
	}
}

func TestSharedHeapScenario(t *testing.T) {
	a := NewShared[Heap]("heap-tag-7", NewHeap)
	b := NewShared[Heap]("heap-tag-7", NewHeap)

	blk := a.Allocate(8)
	if blk.Empty() {
		t.Fatal("allocate should succeed")
	}
	b.Deallocate(&blk)
	if !blk.Empty() {
		t.Error("instance b should be able to deallocate a Block instance a produced")
	}
}
