package alloc

import (
	"reflect"
	"sync"

	"memkit/block"
)

// sharedKey identifies one process-wide shared instance: the concrete
// policy type plus a caller-chosen tag. Two Shared[I] values constructed
// with the same I but different tags get distinct singletons; Go
// generics carry no non-type parameters, so the discriminator is this
// runtime string tag.
type sharedKey struct {
	typ reflect.Type
	tag string
}

var sharedRegistry sync.Map // sharedKey -> the shared instance, boxed as any

// sharedInstance returns the single process-wide instance registered for
// (I, tag), constructing it via factory on first use. Concurrent first
// uses may call factory more than once, but only one result is ever
// published to the registry — a bare package-level sync.Map singleton
// rather than a sync.Once per key, trading a possible duplicate
// construction for a smaller API.
func sharedInstance[I Allocator](tag string, factory func() I) I {
	var zero I
	key := sharedKey{typ: reflect.TypeOf(zero), tag: tag}
	if existing, ok := sharedRegistry.Load(key); ok {
		return existing.(I)
	}
	actual, _ := sharedRegistry.LoadOrStore(key, factory())
	return actual.(I)
}

// Shared promotes an inner policy I to a process-wide instance keyed by
// tag. Every Shared[I] constructed with the same tag forwards to the
// same backing I, regardless of how many Shared values exist.
//
// Shared adds no synchronization of its own. If multiple goroutines call
// Allocate/Deallocate/Owns on Shared values that resolve to the same
// backing instance, the caller must serialize those calls — Shared
// composes with caller-supplied mutual exclusion, it does not replace
// it. See cmd/memkitdemo for an example that wraps a Shared pool with
// its own sync.Mutex at the call site.
type Shared[I Allocator] struct {
	instance I
}

// NewShared resolves (or lazily creates) the process-wide instance for
// (I, tag), calling factory only if no instance has been registered yet.
func NewShared[I Allocator](tag string, factory func() I) *Shared[I] {
	return &Shared[I]{instance: sharedInstance[I](tag, factory)}
}

func (s *Shared[I]) Allocate(sz int64) block.Block {
	return s.instance.Allocate(sz)
}

func (s *Shared[I]) Deallocate(b *block.Block) {
	s.instance.Deallocate(b)
}

func (s *Shared[I]) Owns(b block.Block) bool {
	return s.instance.Owns(b)
}
