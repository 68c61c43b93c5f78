package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "lingopath:exam:detail:placement",
		GenerateCacheKey("exam", "detail", "placement"))
}

func TestGenerateCacheKeyWithParams(t *testing.T) {
	assert.Equal(t, "lingopath:material:list:all:page1_size20",
		GenerateCacheKey("material", "list", "all", "page1", "size20"))
}
