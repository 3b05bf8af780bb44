package util

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumLess(t *testing.T) {
	names := []string{"group-10", "group-2", "group-1b", "finals", "group-1", "group-1a"}
	sort.Slice(names, func(i, j int) bool { return AlphanumLess(names[i], names[j]) })

	assert.Equal(t, []string{"finals", "group-1", "group-1a", "group-1b", "group-2", "group-10"}, names)
	assert.False(t, AlphanumLess("a", "a"))
	assert.True(t, AlphanumLess("a2", "a02b"))
}

func TestSpin(t *testing.T) {
	called := false
	assert.NoError(t, Spin("working", func() error {
		called = true
		return nil
	}))
	assert.True(t, called)

	failure := errors.New("failure")
	assert.ErrorIs(t, Spin("working", func() error { return failure }), failure)
}
