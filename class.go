package ownref

// A view is a value that aliases data reachable from an owner: a pointer, a
// slice or string header, or a fixed group of those (T2..T16). A view
// carries no access duration of its own. Storing one inside a container
// erases the duration under which it was derived; every accessor
// reconstitutes it scoped to that single call.
//
// Erasure and reconstitution are pure and total. What the erased form keeps
// is the access classification: exclusive origin (Mut) or shared origin
// (Const). The classification decides which container type can hold the
// form and therefore which accessors exist at all.

// Mut is the erased form of a view derived under exclusive access. While a
// Mut form is stored, the holding container must not expose any other path
// into the owner's data.
type Mut[V any] struct {
	view V
}

// eraseMut takes custody of an exclusive-derived view. Only the containers
// erase: the result carries no safety proof on its own.
func eraseMut[V any](view V) Mut[V] { return Mut[V]{view: view} }

// reborrow reconstitutes the view for the duration of the accessor call
// that invoked it. The exclusive origin also covers every narrowed, shared
// use.
func (m Mut[V]) reborrow() V { return m.view }

// Const is the erased form of a view derived under shared access. No
// exclusive reconstitution path for it exists anywhere in the package.
type Const[V any] struct {
	view V
}

func eraseConst[V any](view V) Const[V] { return Const[V]{view: view} }

func (c Const[V]) reborrow() V { return c.view }

// SharedOrigin marks erased forms that descend only from shared
// derivations. A container holding a SharedOrigin form may also expose its
// owner; exclusive-origin forms never coexist with a second path into the
// same data.
//
// For grouped views the rule is recursive: a group qualifies only if every
// slot does. That holds by construction here, because a shared-origin
// container can only ever have been built through shared constructors and
// shared maps, and those hand out nothing but shared-derived views.
type SharedOrigin interface {
	sharedOrigin()
}

func (Const[V]) sharedOrigin() {}

var _ SharedOrigin = Const[int]{}
