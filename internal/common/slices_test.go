package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}

func TestOnly(t *testing.T) {
	v, ok := Only([]int{7})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = Only([]int{1, 2})
	assert.False(t, ok)

	_, ok = Only([]int{})
	assert.False(t, ok)
}

func TestToAny(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, ToAny([]string{"a", "b"}))
	assert.Empty(t, ToAny([]string(nil)))
}
