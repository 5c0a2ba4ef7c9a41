package alloc

import "memkit/block"

// Create returns a zero-value instance of an allocator type. It exists
// so call sites can construct a policy generically without naming its
// concrete type twice.
func Create[T Allocator]() T {
	var t T
	return t
}

// Allocate requests size bytes from a, translating the policy's
// always-empty-on-failure convention into a (Block, error) result for
// callers that want to check errors.Is instead of calling Empty.
//
// A negative size returns ErrInvalidSize without consulting a. A zero
// size returns an empty Block with no error. Any other size that a
// fails to satisfy returns ErrUnknown, collapsing every policy-level
// failure reason (out of space, refused, etc.) into one sentinel, since
// the Allocator contract itself carries no richer cause.
func Allocate(a Allocator, size int64) (block.Block, error) {
	if size < 0 {
		return block.Block{}, ErrInvalidSize
	}
	if size == 0 {
		return block.Block{}, nil
	}
	b := a.Allocate(size)
	if b.Empty() {
		return block.Block{}, ErrUnknown
	}
	return b, nil
}

// Deallocate unconditionally forwards to a.Deallocate. It never fails
// observably: b is always empty on return.
func Deallocate(a Allocator, b *block.Block) {
	a.Deallocate(b)
}

// Owns unconditionally forwards to a.Owns.
func Owns(a Allocator, b block.Block) bool {
	return a.Owns(b)
}
