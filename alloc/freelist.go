package alloc

import (
	"unsafe"

	"memkit/block"
)

// node is the intrusive free-list link. It lives inside a recycled
// block's own bytes — valid only while that block sits on the free
// list — the same trick the Go runtime's fixalloc uses for its mlink
// nodes.
type node struct {
	next *node
}

// FreeList recycles blocks in the size window [Min, Max], always at
// size Max, so any freed in-range block can satisfy any in-range
// request without asking the inner allocator I again. Min, Max, and
// MaxListSize are fixed at construction since Go generics carry no
// value-level parameters.
type FreeList[I Allocator] struct {
	inner I

	min, max    int64
	maxListSize int64

	root     *node
	listSize int64
}

// NewFreeList builds a FreeList over inner with the given size window
// and list capacity. min and max must each be > 1 and even, the same
// alignment an Arena inner allocator rounds every request to, and
// maxListSize must be > 0.
func NewFreeList[I Allocator](inner I, min, max, maxListSize int64) *FreeList[I] {
	if min <= 1 || min%2 != 0 {
		panic("alloc: FreeList min must be > 1 and even")
	}
	if max <= 1 || max%2 != 0 {
		panic("alloc: FreeList max must be > 1 and even")
	}
	if maxListSize <= 0 {
		panic("alloc: FreeList maxListSize must be > 0")
	}
	return &FreeList[I]{inner: inner, min: min, max: max, maxListSize: maxListSize}
}

func (f *FreeList[I]) inRange(s int64) bool {
	return s >= f.min && s <= f.max
}

func (f *FreeList[I]) Allocate(s int64) block.Block {
	if f.inRange(s) && f.listSize > 0 {
		n := f.root
		f.root = n.next
		f.listSize--
		return block.New(s, unsafe.Pointer(n))
	}

	want := s
	if f.inRange(s) {
		want = f.max
	}
	b := f.inner.Allocate(want)
	if b.Empty() {
		return block.Block{}
	}
	return block.New(s, b.Addr)
}

func (f *FreeList[I]) Deallocate(b *block.Block) {
	if b.Empty() {
		return
	}
	if !f.inRange(b.Size) || f.listSize >= f.maxListSize {
		nb := block.New(f.max, b.Addr)
		f.inner.Deallocate(&nb)
		*b = block.Block{}
		return
	}

	n := (*node)(b.Addr)
	n.next = f.root
	f.root = n
	f.listSize++
	*b = block.Block{}
}

func (f *FreeList[I]) Owns(b block.Block) bool {
	return f.inRange(b.Size) || f.inner.Owns(b)
}

// Close drains the free list, forwarding each node to the inner
// allocator as a (Max, addr) Block. Call it when discarding a FreeList
// that still holds internally retained (not user-held) memory; Go has
// no destructors to do this automatically.
func (f *FreeList[I]) Close() {
	for f.root != nil {
		n := f.root
		f.root = n.next
		b := block.New(f.max, unsafe.Pointer(n))
		f.inner.Deallocate(&b)
	}
	f.listSize = 0
}
