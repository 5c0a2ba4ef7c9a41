package main

import (
	"sync/atomic"

	"memkit/block"
)

// retireRing is a lock-free SPSC ring buffer of Blocks awaiting return
// to a shared pool. Shared adds no synchronization of its own (see
// alloc.Shared's doc comment), so an application that hands a Shared
// allocator to multiple goroutines needs its own discipline for
// returning memory safely; this ring is one such discipline — a
// producer retires Blocks into it, a single consumer goroutine drains
// it and calls Deallocate under its own lock.
type retireRing struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []block.Block
	mask  uint64
}

func newRetireRing(size uint64) *retireRing {
	if size&(size-1) != 0 {
		panic("memkitdemo: retire ring size must be a power of two")
	}
	return &retireRing{
		buf:  make([]block.Block, size),
		mask: size - 1,
	}
}

func (r *retireRing) enqueue(b block.Block) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = b
	atomic.StoreUint64(&r.head, h+1)
	return true
}

func (r *retireRing) dequeue() (block.Block, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return block.Block{}, false
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = block.Block{}
	atomic.StoreUint64(&r.tail, t+1)
	return v, true
}
