// Package ownref bundles an owner with a view into data reachable from it,
// so the view can be stored, moved, and re-derived without the caller
// tracking the owner's lifetime separately.
//
// Ownership boundary:
// - owner contract (stable-address dereference, optional release hook)
// - view classification: exclusive origin vs shared origin
// - container lifecycle: construct, map, borrow, extract
//
// A container belongs to exactly one logical holder; nothing in this
// package synchronizes. Passing a container to Map or calling a consuming
// method transfers it, and the passed-in value must not be used again.
package ownref
