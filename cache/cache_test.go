package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()

	store.Set("tree", []byte("payload"), time.Minute)
	value, ok := store.Get("tree")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	_, ok := store.Get("absent")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()

	store.Set("short", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("short")
	assert.False(t, ok)
}

func TestMemoryStoreInvalidate(t *testing.T) {
	store := NewMemoryStore()

	store.Set("tree", []byte("x"), time.Minute)
	store.Invalidate("tree")

	_, ok := store.Get("tree")
	assert.False(t, ok)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()

	store.Set("key", []byte("old"), time.Minute)
	store.Set("key", []byte("new"), time.Minute)

	value, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestKeyFile(t *testing.T) {
	assert.Equal(t, "file:jsc/26-02-w1/boj-2346-v1.py", KeyFile("jsc/26-02-w1/boj-2346-v1.py"))
}
