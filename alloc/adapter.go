package alloc

import (
	"fmt"
	"unsafe"

	"memkit/block"
)

// OOMError is panicked by ContainerAdapter.Alloc when the inner policy
// cannot satisfy a request. It is the one place in this toolkit where a
// failure is raised as an exceptional condition instead of returned as
// an empty Block: generic container libraries that accept a custom
// allocator shape (Alloc(n) *T, no room for a second return value)
// expect that contract, so ContainerAdapter panics and lets a caller
// that wants the try/catch shape recover it.
type OOMError struct {
	Requested int64
}

func (e OOMError) Error() string {
	return fmt.Sprintf("alloc: out of memory requesting %d bytes", e.Requested)
}

// ContainerAdapter presents policy I under the two-operation shape
// generic container libraries expect: Alloc(n) allocates room for n
// values of T, Free(p, n) releases it.
type ContainerAdapter[T any, I Allocator] struct {
	inner I
}

// NewContainerAdapter wraps inner for element type T.
func NewContainerAdapter[T any, I Allocator](inner I) ContainerAdapter[T, I] {
	return ContainerAdapter[T, I]{inner: inner}
}

// Alloc requests room for n values of T from the inner policy. It
// panics with OOMError if the inner policy returns an empty Block.
func (a ContainerAdapter[T, I]) Alloc(n int) *T {
	var zero T
	size := int64(n) * int64(unsafe.Sizeof(zero))
	b := a.inner.Allocate(size)
	if b.Empty() {
		panic(OOMError{Requested: size})
	}
	return (*T)(b.Addr)
}

// Free releases the n-element region starting at p, reconstructing it
// as a Block before forwarding to the inner policy.
func (a ContainerAdapter[T, I]) Free(p *T, n int) {
	var zero T
	size := int64(n) * int64(unsafe.Sizeof(zero))
	b := block.New(size, unsafe.Pointer(p))
	a.inner.Deallocate(&b)
}

// Rebind returns a ContainerAdapter for a different element type U,
// preserving the inner policy instance.
func Rebind[U, T any, I Allocator](a ContainerAdapter[T, I]) ContainerAdapter[U, I] {
	return ContainerAdapter[U, I]{inner: a.inner}
}
