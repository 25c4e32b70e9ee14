package ownref

// Map consumes r and rebuilds it over the same owner with f's result as the
// stored view. f receives the current view reconstituted with exclusive
// access for exactly the duration of the call; its result must alias data
// reachable from the owner and nothing else.
//
// The owner is released exactly once on every exit path: both parts are
// moved into locals before f runs, a deferred guard releases the owner if f
// panics, and the guard is disarmed before repackaging.
func Map[O, V, W any](r RefMut[O, V], f func(V) W) RefMut[O, W] {
	owner := r.owner
	view := r.ref.reborrow()

	armed := true
	defer func() {
		if armed {
			releaseOwner(owner)
		}
	}()

	next := f(view)
	armed = false

	return RefMut[O, W]{owner: owner, ref: eraseMut(next)}
}

// TryMap is Map with a fallible transform. On success it behaves exactly
// like Map. On failure the owner and the stored view go down with the
// attempt: the owner's Release hook runs and only the error survives.
func TryMap[O, V, W any](r RefMut[O, V], f func(V) (W, error)) (RefMut[O, W], error) {
	owner := r.owner
	view := r.ref.reborrow()

	// The guard covers both the panic path and the error return.
	armed := true
	defer func() {
		if armed {
			releaseOwner(owner)
		}
	}()

	next, err := f(view)
	if err != nil {
		return RefMut[O, W]{}, err
	}
	armed = false

	return RefMut[O, W]{owner: owner, ref: eraseMut(next)}, nil
}

// MapShared consumes r and rebuilds it over the same owner with f's result
// as the stored view. f receives the current view with shared access for
// exactly the duration of the call; it must not write through its argument,
// and its result must alias data reachable from the owner.
func MapShared[O, V, W any](r Ref[O, V], f func(V) W) Ref[O, W] {
	owner := r.owner
	view := r.ref.reborrow()

	armed := true
	defer func() {
		if armed {
			releaseOwner(owner)
		}
	}()

	next := f(view)
	armed = false

	return Ref[O, W]{owner: owner, ref: eraseConst(next)}
}

// TryMapShared is MapShared with a fallible transform, with TryMap's
// failure contract: the owner is released and only the error survives.
func TryMapShared[O, V, W any](r Ref[O, V], f func(V) (W, error)) (Ref[O, W], error) {
	owner := r.owner
	view := r.ref.reborrow()

	armed := true
	defer func() {
		if armed {
			releaseOwner(owner)
		}
	}()

	next, err := f(view)
	if err != nil {
		return Ref[O, W]{}, err
	}
	armed = false

	return Ref[O, W]{owner: owner, ref: eraseConst(next)}, nil
}
