package ownref

// RefMut couples an owner with an exclusive-origin view into data reachable
// from it. Because the view was derived while holding sole access, RefMut
// never exposes a second path to the same data: there is no AsOwner here,
// only Borrow (narrowed), BorrowMut, and the consuming extractors.
//
// The zero RefMut holds no owner and no view; only the constructors and
// Map/TryMap produce valid containers.
type RefMut[O, V any] struct {
	owner O
	ref   Mut[V]
}

// New builds an exclusive container holding owner and the erased form of
// its direct dereference. The owner's stable-address guarantee must hold.
// The element type usually has to be spelled at the call site:
//
//	r := ownref.New[string](box)
func New[T any, O StableDeref[T]](owner O) RefMut[O, *T] {
	return RefMut[O, *T]{owner: owner, ref: eraseMut(owner.Deref())}
}

// NewRaw builds an exclusive container from an arbitrary derivation. The
// caller guarantees, unchecked, that derive's result keeps aliasing valid
// storage at a stable address for as long as owner is held. Intended for
// wrappers that enforce an owner contract of their own.
func NewRaw[O, V any](owner O, derive func(O) V) RefMut[O, V] {
	return RefMut[O, V]{owner: owner, ref: eraseMut(derive(owner))}
}

// Borrow reconstitutes the stored view for shared use, scoped to this call.
// Narrowing from the exclusive origin is always permitted. The caller must
// not write through the result and must not retain it past the call.
func (r *RefMut[O, V]) Borrow() V {
	return r.ref.reborrow()
}

// BorrowMut reconstitutes the stored view with the exclusivity that was
// erased, scoped to this call. The caller must not retain the result past
// the call.
func (r *RefMut[O, V]) BorrowMut() V {
	return r.ref.reborrow()
}

// IntoOwner discards the stored view and hands the owner back with full,
// unrestricted access. The owner's Release hook does not run. The container
// is consumed.
func (r RefMut[O, V]) IntoOwner() O {
	return r.owner
}

// Release tears the container down: the erased view is discarded first,
// then the owner's Release hook runs, if it has one. The container is
// consumed.
func (r RefMut[O, V]) Release() {
	releaseOwner(r.owner)
}
