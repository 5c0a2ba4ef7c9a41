// Package alloc provides composable memory-allocation policies that
// share one narrow contract (Allocate, Deallocate, Owns) and can be
// stacked to build a bespoke allocator: a stack arena backed by a heap
// fallback, fronted by a size-class free list, wrapped in a statistics
// layer, shared process-wide.
//
// The package is dependency-free and forms the foundation for every
// policy in this toolkit; composition happens entirely through the
// Allocator interface, never through inheritance or type assertions on
// concrete policy types.
package alloc
