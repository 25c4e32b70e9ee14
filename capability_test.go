package ownref_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/ownref"
)

// The shared/exclusive split is a capability absence, not a runtime check:
// the wrong accessor does not exist on the wrong container. These tests pin
// the method sets the compiler enforces.

var _ ownref.SharedOrigin = ownref.Const[struct{}]{}

func TestSharedOriginContainerOffersNoExclusiveAccess(t *testing.T) {
	typ := reflect.TypeOf(&ownref.Ref[ownref.Box[string], *string]{})

	if _, ok := typ.MethodByName("BorrowMut"); ok {
		t.Fatalf("Ref must not offer BorrowMut")
	}
	for _, name := range []string{"Borrow", "AsOwner", "IntoOwner", "Release"} {
		_, ok := typ.MethodByName(name)
		require.Truef(t, ok, "Ref must offer %s", name)
	}
}

func TestExclusiveOriginContainerOffersNoOwnerAlias(t *testing.T) {
	typ := reflect.TypeOf(&ownref.RefMut[ownref.Box[string], *string]{})

	if _, ok := typ.MethodByName("AsOwner"); ok {
		t.Fatalf("RefMut must not offer AsOwner")
	}
	for _, name := range []string{"Borrow", "BorrowMut", "IntoOwner", "Release"} {
		_, ok := typ.MethodByName(name)
		require.Truef(t, ok, "RefMut must offer %s", name)
	}
}

func TestSharedOriginMarkerCoversConstOnly(t *testing.T) {
	marker := reflect.TypeOf((*ownref.SharedOrigin)(nil)).Elem()
	require.True(t, reflect.TypeOf(ownref.Const[int]{}).Implements(marker))
	require.False(t, reflect.TypeOf(ownref.Mut[int]{}).Implements(marker))
}
