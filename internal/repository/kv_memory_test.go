package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	// Values come back byte for byte, whitespace and case included.
	values := map[string]string{
		"userEmail":    "a@b.com",
		"userPassword": "  Pw123 ",
		"userFullName": "Test Donor",
		"empty":        "",
	}
	for k, v := range values {
		require.NoError(t, store.Set(ctx, k, v))
	}

	for k, want := range values {
		got, ok, err := store.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, "key %q should exist", k)
		assert.Equal(t, want, got, "key %q", k)
	}
}

func TestMemoryKVStore_GetAbsentKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	value, ok, err := store.Get(ctx, "neverWritten")
	require.NoError(t, err, "absence is not a failure")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestMemoryKVStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	require.NoError(t, store.Set(ctx, "userLocation", "Pune"))
	require.NoError(t, store.Set(ctx, "userLocation", "Mumbai"))

	got, ok, err := store.Get(ctx, "userLocation")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Mumbai", got)
}

func TestMemoryKVStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	require.NoError(t, store.Set(ctx, "userProfileImage", "file:///img.png"))
	require.NoError(t, store.Delete(ctx, "userProfileImage"))

	_, ok, err := store.Get(ctx, "userProfileImage")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op, not an error.
	require.NoError(t, store.Delete(ctx, "userProfileImage"))
}

func TestMemoryKVStore_ListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	require.NoError(t, store.Set(ctx, "userWeight", "70"))
	require.NoError(t, store.Set(ctx, "userEmail", "a@b.com"))
	require.NoError(t, store.Set(ctx, "userDOB", "2000-01-01"))

	pairs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "userDOB", pairs[0].Key)
	assert.Equal(t, "userEmail", pairs[1].Key)
	assert.Equal(t, "userWeight", pairs[2].Key)
}
