package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalCache(t *testing.T) {
	InitCache()

	CacheSet("k", 42, time.Minute)
	v, ok := CacheGet("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	CacheDelete("k")
	_, ok = CacheGet("k")
	assert.False(t, ok)
}

func TestRecCache(t *testing.T) {
	c := NewRecCache[string](2, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	// 超过容量后最久未使用的条目被淘汰
	c.Set("c", "3")
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestRecCache_Expiry(t *testing.T) {
	c := NewRecCache[int](10, -time.Second)

	c.Set("k", 7)
	_, ok := c.Get("k")
	assert.False(t, ok, "过期条目读取时剔除")
}
