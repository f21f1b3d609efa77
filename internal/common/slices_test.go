package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)

	even, ok := FirstMatch([]int{1, 3, 4, 6}, func(i int) bool { return i%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 4, even)

	_, ok = FirstMatch([]int{1, 3}, func(i int) bool { return i%2 == 0 })
	assert.False(t, ok)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 2))
	assert.True(t, IsInRange(0, 2, 2))
	assert.False(t, IsInRange(0, 3, 2))
	assert.False(t, IsInRange(0, 0, -1))
	assert.True(t, IsInRange(-1.5, 0.0, 1.5))
}
