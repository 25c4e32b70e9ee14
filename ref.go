package ownref

// Ref couples an owner with a shared-origin view into data reachable from
// it. Every reference Ref hands out is read-only by contract, so exposing
// the owner alongside the view is sound and AsOwner is available. There is
// no BorrowMut: a shared-derived view is never reconstituted exclusive.
//
// The zero Ref holds no owner and no view; only the constructors and
// MapShared/TryMapShared produce valid containers.
type Ref[O, V any] struct {
	owner O
	ref   Const[V]
}

// NewShared builds a shared container holding owner and the erased form of
// its direct dereference. The owner's stable-address guarantee must hold.
// The element type usually has to be spelled at the call site:
//
//	r := ownref.NewShared[string](box)
func NewShared[T any, O StableDeref[T]](owner O) Ref[O, *T] {
	return Ref[O, *T]{owner: owner, ref: eraseConst(owner.Deref())}
}

// NewRawShared builds a shared container from an arbitrary derivation. The
// caller guarantees, unchecked, that derive's result keeps aliasing valid
// storage at a stable address for as long as owner is held, and that it was
// derived without taking exclusive access.
func NewRawShared[O, V any](owner O, derive func(O) V) Ref[O, V] {
	return Ref[O, V]{owner: owner, ref: eraseConst(derive(owner))}
}

// Borrow reconstitutes the stored view, scoped to this call. The caller
// must not write through the result and must not retain it past the call.
func (r *Ref[O, V]) Borrow() V {
	return r.ref.reborrow()
}

// AsOwner returns shared access to the owner: a copy of the handle, which
// dereferences to the same storage. Only shared-origin containers offer
// this; beside an exclusive-derived view it would open a second path into
// mutably aliased data.
func (r *Ref[O, V]) AsOwner() O {
	return r.owner
}

// IntoOwner discards the stored view and hands the owner back with full,
// unrestricted access. The owner's Release hook does not run. The container
// is consumed.
func (r Ref[O, V]) IntoOwner() O {
	return r.owner
}

// Release tears the container down: the erased view is discarded first,
// then the owner's Release hook runs, if it has one. The container is
// consumed.
func (r Ref[O, V]) Release() {
	releaseOwner(r.owner)
}
