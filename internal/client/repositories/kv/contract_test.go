package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// testContract runs the behaviour every backend must share.
func testContract(t *testing.T, r Repository) {
	t.Helper()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must return (nil, nil)")

	require.NoError(t, r.Set(ctx, "todo-mini-backend-v1", []byte(`{"users":[]}`)))
	v, err = r.Get(ctx, "todo-mini-backend-v1")
	require.NoError(t, err)
	require.Equal(t, `{"users":[]}`, string(v))

	require.NoError(t, r.Set(ctx, "todo-mini-backend-v1", []byte(`{"users":[],"sessionUserId":null}`)))
	v, err = r.Get(ctx, "todo-mini-backend-v1")
	require.NoError(t, err)
	require.Equal(t, `{"users":[],"sessionUserId":null}`, string(v), "Set must upsert")

	require.NoError(t, r.Set(ctx, "other", []byte("x")))
	v, err = r.Get(ctx, "todo-mini-backend-v1")
	require.NoError(t, err)
	require.Equal(t, `{"users":[],"sessionUserId":null}`, string(v), "keys must not collide")
}
