package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeLastN(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, SafeLastN([]int{1, 2, 3, 4, 5}, 3))
	assert.Equal(t, []int{1, 2}, SafeLastN([]int{1, 2}, 3))
	assert.Empty(t, SafeLastN([]int{}, 3))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", TruncateRunes("short", 10))
	assert.Equal(t, "abc...", TruncateRunes("abcdef", 3))
	assert.Equal(t, "🌿🌿...", TruncateRunes("🌿🌿🌿🌿", 2))
	assert.Equal(t, "anything", TruncateRunes("anything", 0))
}
