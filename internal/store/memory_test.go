package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

// Login, lookup, forget, lookup-again: the full lifecycle of one record.
func TestMemory_Lifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewMemory(testCodec(t))

	created, err := st.CreateOrGet(ctx, "42", "alice", "secret:pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username())
	assert.Equal(t, "secret:pw", created.Password())

	found, err := st.Lookup(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Username())
	assert.Equal(t, "secret:pw", found.Password())

	removed, err := st.Forget(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "alice", removed.Username())

	gone, err := st.Lookup(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMemory_CreateOrGetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemory(testCodec(t))

	first, err := st.CreateOrGet(ctx, "42", "alice", "pw1")
	require.NoError(t, err)

	second, err := st.CreateOrGet(ctx, "42", "mallory", "pw2")
	require.NoError(t, err)

	assert.Equal(t, first.Token(), second.Token())
	assert.Equal(t, "alice", second.Username())
	assert.Equal(t, "pw1", second.Password())
}

func TestMemory_UpdateReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	st := NewMemory(testCodec(t))

	_, err := st.CreateOrGet(ctx, "42", "alice", "old")
	require.NoError(t, err)

	prev, err := st.Update(ctx, "42", "alice", "new")
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "old", prev.Password())

	cur, err := st.Lookup(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "new", cur.Password())
}

func TestMemory_UpdateAbsent(t *testing.T) {
	st := NewMemory(testCodec(t))

	prev, err := st.Update(context.Background(), "42", "alice", "new")
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestMemory_SelfHealsLegacyRowOnForget(t *testing.T) {
	ctx := context.Background()
	st := NewMemory(testCodec(t))

	legacy, err := credentials.BasicCodec{}.Encode("alice", "pw")
	require.NoError(t, err)
	st.Seed("42", legacy)

	rec, err := st.Forget(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username())
	assert.Equal(t, "pw", rec.Password())
}

func TestMemory_SelfHealsLegacyRowOnUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemory(testCodec(t))

	legacy, err := credentials.BasicCodec{}.Encode("alice", "old")
	require.NoError(t, err)
	st.Seed("42", legacy)

	prev, err := st.Update(ctx, "42", "alice", "new")
	require.NoError(t, err)
	assert.Equal(t, "old", prev.Password())

	cur, err := st.Lookup(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "new", cur.Password())
}
