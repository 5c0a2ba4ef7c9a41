package alloc

import (
	"testing"
	"unsafe"

	"memkit/block"
)

func TestContainerAdapterAllocFree(t *testing.T) {
	a := NewContainerAdapter[int64](NewHeap())

	p := a.Alloc(4)
	*p = 42
	if *p != 42 {
		t.Fatal("allocated region should be writable")
	}
	a.Free(p, 4)
}

func TestContainerAdapterOOMPanics(t *testing.T) {
	a := NewContainerAdapter[int64](NewArena(32))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Alloc should panic when the inner arena can't satisfy the request")
		}
		if _, ok := r.(OOMError); !ok {
			t.Errorf("expected an OOMError panic value, got %#v", r)
		}
	}()

	a.Alloc(1000) // far larger than the 32-byte arena
}

func TestContainerAdapterRebindPreservesInner(t *testing.T) {
	ar := NewArena(64)
	a := NewContainerAdapter[int32](ar)
	b := Rebind[int64](a)

	p := b.Alloc(1)
	produced := block.New(8, unsafe.Pointer(p))
	if !ar.Owns(produced) {
		t.Error("rebound adapter should still allocate from the same inner Arena")
	}
}
