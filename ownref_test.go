package ownref_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/ownref"
	"github.com/danmuck/ownref/internal/testutil/testlog"
)

func TestConstructBorrowMatchesDirectDeref(t *testing.T) {
	box := ownref.NewBox(1138)

	shared := ownref.NewShared[int](box)
	require.Same(t, box.Deref(), shared.Borrow())

	excl := ownref.New[int](box)
	require.Same(t, box.Deref(), excl.Borrow())
	require.Same(t, box.Deref(), excl.BorrowMut())
}

func TestSharedScenarioFirstWord(t *testing.T) {
	testlog.Start(t)

	box := ownref.NewBox("hello world")
	r := ownref.NewShared[string](box)

	word := ownref.MapShared(r, func(s *string) string {
		head, _, _ := strings.Cut(*s, " ")
		return head
	})
	require.Equal(t, "hello", word.Borrow())

	owner := word.IntoOwner()
	require.Equal(t, "hello world", owner.Value())
	require.Same(t, box.Deref(), owner.Deref())
}

func TestExclusiveScenarioUppercaseHead(t *testing.T) {
	testlog.Start(t)

	box := ownref.NewBox([]byte("hello world"))
	r := ownref.New[[]byte](box)

	head := ownref.Map(r, func(b *[]byte) []byte { return (*b)[:5] })
	view := head.BorrowMut()
	copy(view, bytes.ToUpper(view))

	owner := head.IntoOwner()
	require.Equal(t, "HELLO world", string(owner.Value()))
}

func TestNewRawCustomDerivation(t *testing.T) {
	data := []int{3, 5, 8}
	r := ownref.NewRaw(&data, func(d *[]int) *int { return &(*d)[2] })
	require.Same(t, &data[2], r.BorrowMut())
	require.Same(t, &data, r.IntoOwner())
}

func TestNewRawSharedCustomDerivation(t *testing.T) {
	data := [4]byte{'a', 'b', 'c', 'd'}
	r := ownref.NewRawShared(&data, func(d *[4]byte) []byte { return d[1:3] })
	require.Equal(t, "bc", string(r.Borrow()))
	require.Same(t, &data, r.AsOwner())
}

func TestAsOwnerSharesTheHandle(t *testing.T) {
	box := ownref.NewBox("state")
	r := ownref.NewShared[string](box)

	alias := r.AsOwner()
	require.Same(t, box.Deref(), alias.Deref())

	// Observing the owner leaves the stored view untouched.
	require.Equal(t, "state", *r.Borrow())
}
