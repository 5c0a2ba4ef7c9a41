package alloc

import (
	"unsafe"

	"memkit/block"
)

// Heap is a thin wrapper over Go's runtime allocator. It carries no
// per-instance state, so every Heap value (zero or otherwise) behaves
// identically.
//
// Owns is deliberately permissive: it reports true for any non-nil
// address, regardless of which Heap instance (or which policy) actually
// produced it. That makes Heap a safe terminal in a Fallback chain — it
// will catch anything nothing else claims — and an unsafe primary, since
// its Owns can never discriminate a foreign Block. See Fallback's doc
// comment for the ordering requirement this implies.
type Heap struct{}

// NewHeap returns a ready-to-use Heap. Heap has no state, so the zero
// value works equally well; NewHeap exists for symmetry with the other
// leaf policy, Arena.
func NewHeap() Heap { return Heap{} }

func (Heap) Allocate(s int64) block.Block {
	if s <= 0 {
		return block.Block{}
	}
	buf := make([]byte, s)
	return block.New(s, unsafe.Pointer(&buf[0]))
}

func (Heap) Deallocate(b *block.Block) {
	// Go is garbage collected: there is no explicit free to call. Dropping
	// every reference to the backing slice is enough; the GC reclaims it
	// once unreachable. We still reset b, matching every other policy's
	// deallocate contract.
	*b = block.Block{}
}

func (Heap) Owns(b block.Block) bool {
	return b.Addr != nil
}
