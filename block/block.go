// Package block defines the single value every allocation policy in
// memkit exchanges: a (size, address) pair identifying a memory region.
package block

import "unsafe"

// Block identifies an owned memory region. An empty Block has zero size
// and/or a nil address; both are produced together by every policy in
// this toolkit, never independently.
type Block struct {
	Size int64
	Addr unsafe.Pointer
}

// New builds a Block from an explicit size and address. It performs no
// validation — policies are responsible for only ever constructing
// Blocks that satisfy the invariants described on Empty.
func New(size int64, addr unsafe.Pointer) Block {
	return Block{Size: size, Addr: addr}
}

// Empty reports whether b carries no memory: true iff Size == 0 or
// Addr == nil. A successful allocate(s) never returns an empty Block for
// s > 0; every deallocate resets its argument to the empty Block.
func (b Block) Empty() bool {
	return b.Size == 0 || b.Addr == nil
}

// Reset empties b in place, the same transition deallocate performs on
// the caller's Block.
func (b *Block) Reset() {
	*b = Block{}
}
