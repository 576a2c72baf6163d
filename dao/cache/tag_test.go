package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Go ", "go", "", "  ", "Redis"})
	assert.Equal(t, []string{"go", "redis"}, got)
}

func TestDiffTags(t *testing.T) {
	added, removed := DiffTags([]string{"go", "redis"}, []string{"redis", "mysql"})
	assert.Equal(t, []string{"mysql"}, added)
	assert.Equal(t, []string{"go"}, removed)

	added, removed = DiffTags([]string{"go"}, []string{"go"})
	assert.Empty(t, added)
	assert.Empty(t, removed)
}
