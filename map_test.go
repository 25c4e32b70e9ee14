package ownref_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/ownref"
	"github.com/danmuck/ownref/internal/testutil/testlog"
)

// countingOwner counts Release hook invocations through a shared counter so
// copies of the handle observe the same count.
type countingOwner struct {
	cell     *[]byte
	releases *int
}

func (o countingOwner) Deref() *[]byte { return o.cell }
func (o countingOwner) Release()       { *o.releases++ }

func newCountingOwner(s string) (countingOwner, *int) {
	data := []byte(s)
	releases := new(int)
	return countingOwner{cell: &data, releases: releases}, releases
}

type inner struct{ N int }

type outer struct{ In inner }

func TestMapThenIntoOwnerReturnsOriginalOwner(t *testing.T) {
	box := ownref.NewBox(outer{In: inner{N: 7}})
	r := ownref.Map(ownref.New[outer](box), func(o *outer) *inner { return &o.In })

	owner := r.IntoOwner()
	require.Same(t, box.Deref(), owner.Deref())
	require.Equal(t, outer{In: inner{N: 7}}, owner.Value())
}

func TestMapIsCompositional(t *testing.T) {
	box := ownref.NewBox(outer{In: inner{N: 3}})
	f := func(o *outer) *inner { return &o.In }
	g := func(i *inner) *int { return &i.N }

	nested := ownref.Map(ownref.Map(ownref.New[outer](box), f), g)
	composed := ownref.Map(ownref.New[outer](box), func(o *outer) *int { return g(f(o)) })

	require.Same(t, nested.Borrow(), composed.Borrow())
}

func TestMapReleasesOwnerOncePerPanic(t *testing.T) {
	testlog.Start(t)

	owner, releases := newCountingOwner("abc")
	r := ownref.New[[]byte](owner)

	require.PanicsWithValue(t, "mid-transform", func() {
		ownref.Map(r, func(*[]byte) *byte { panic("mid-transform") })
	})
	require.Equal(t, 1, *releases)
}

func TestTryMapSuccessBehavesLikeMap(t *testing.T) {
	owner, releases := newCountingOwner("hello world")
	r := ownref.New[[]byte](owner)

	head, err := ownref.TryMap(r, func(b *[]byte) ([]byte, error) { return (*b)[:5], nil })
	require.NoError(t, err)
	require.Equal(t, "hello", string(head.Borrow()))
	require.Zero(t, *releases)
}

func TestTryMapFailureYieldsOnlyTheError(t *testing.T) {
	owner, releases := newCountingOwner("hello world")
	r := ownref.New[[]byte](owner)

	errNoView := errors.New("no view here")
	_, err := ownref.TryMap(r, func(*[]byte) (*byte, error) { return nil, errNoView })
	require.ErrorIs(t, err, errNoView)
	require.Equal(t, 1, *releases)
}

func TestTryMapSharedFailureReleasesOwner(t *testing.T) {
	owner, releases := newCountingOwner("payload")
	r := ownref.NewRawShared(owner, func(o countingOwner) *[]byte { return o.cell })

	errShort := errors.New("too short")
	_, err := ownref.TryMapShared(r, func(*[]byte) ([]byte, error) { return nil, errShort })
	require.ErrorIs(t, err, errShort)
	require.Equal(t, 1, *releases)
}

func TestReleaseRunsOwnerHookAfterViewDiscard(t *testing.T) {
	owner, releases := newCountingOwner("x")
	ownref.New[[]byte](owner).Release()
	require.Equal(t, 1, *releases)
}

func TestIntoOwnerSkipsReleaseHook(t *testing.T) {
	owner, releases := newCountingOwner("x")
	got := ownref.New[[]byte](owner).IntoOwner()
	require.Zero(t, *releases)
	require.Same(t, owner.cell, got.cell)
}
