package resource

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"diporani_web/internals/remote"
)

func TestCollectionStates(t *testing.T) {
	pending := Pending[string]()
	assert.True(t, pending.Loading())
	assert.False(t, pending.Empty())
	assert.False(t, pending.Failed())

	empty := Resolve[string](nil, nil)
	assert.True(t, empty.Ready())
	assert.True(t, empty.Empty())
	assert.False(t, empty.Loading())
	assert.NotNil(t, empty.Items())

	full := Resolve([]string{"a", "b"}, nil)
	assert.False(t, full.Empty())
	assert.Equal(t, 2, full.Len())

	boom := errors.New("unreachable")
	failed := Resolve([]string{"ignored"}, boom)
	assert.True(t, failed.Failed())
	assert.False(t, failed.Empty())
	assert.False(t, failed.Loading())
	assert.Nil(t, failed.Items())
	assert.ErrorIs(t, failed.Err(), boom)
}

func TestMapKeepsState(t *testing.T) {
	c := Map(Resolve([]int{1, 2}, nil), func(n int) string { return fmt.Sprint(n * 10) })
	assert.Equal(t, []string{"10", "20"}, c.Items())
	assert.True(t, c.Ready())

	f := Map(Resolve[int](nil, errors.New("x")), func(n int) string { return "" })
	assert.True(t, f.Failed())
}

func TestItemNotFoundPaths(t *testing.T) {
	assert.False(t, PendingItem[int]().NotFound())

	missing := ResolveItem(0, fmt.Errorf("fetch materials: %w", remote.ErrNotFound))
	assert.True(t, missing.NotFound())
	assert.False(t, missing.Failed())

	failed := ResolveItem(0, &remote.QueryError{Status: 400, Code: "22P02", Message: "invalid input syntax for type uuid"})
	assert.True(t, failed.NotFound())
	assert.True(t, failed.Failed())

	ok := ResolveItem(7, nil)
	assert.False(t, ok.NotFound())
	v, found := ok.Value()
	assert.True(t, found)
	assert.Equal(t, 7, v)
}

func TestFound(t *testing.T) {
	assert.True(t, Found("", false).NotFound())
	assert.False(t, Found("x", true).NotFound())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "failed", Failed.String())
}
