package ownref

// StableDeref is the owner contract. Deref returns the address of the
// owner's data, and that address must survive the owner value itself being
// copied or moved: every copy of the handle dereferences to the same
// storage. Heap cells, refcount-style handles, and buffers that never
// relocate existing elements qualify; a value carrying its data inline does
// not.
type StableDeref[T any] interface {
	Deref() *T
}

// Releaser is an optional owner hook. Containers run it when they tear the
// owner down: an explicit Release, a transform that panics mid-call, or a
// failed TryMap. IntoOwner never runs it; the owner goes back to the caller
// intact.
type Releaser interface {
	Release()
}

// Box is a heap cell, the canonical StableDeref owner. Copies of a Box
// share one cell. The zero Box has no cell and cannot back a container.
type Box[T any] struct {
	cell *T
}

// NewBox allocates a cell holding v.
func NewBox[T any](v T) Box[T] {
	cell := new(T)
	*cell = v
	return Box[T]{cell: cell}
}

// Deref returns the address of the boxed value. Panics on the zero Box;
// that is the one owner precondition nothing else checks.
func (b Box[T]) Deref() *T {
	if b.cell == nil {
		panic("ownref: zero Box has no cell")
	}
	return b.cell
}

// Value returns a copy of the boxed value.
func (b Box[T]) Value() T { return *b.Deref() }

// releaseOwner runs the owner's Release hook, if it has one.
func releaseOwner(owner any) {
	if r, ok := owner.(Releaser); ok {
		r.Release()
	}
}
