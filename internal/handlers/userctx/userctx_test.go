package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserctx(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := New(t.Context(), "alice")

		username, ok := FromContext(ctx)

		require.True(t, ok)
		require.Equal(t, "alice", username)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := FromContext(context.Background())

		require.False(t, ok)
	})

	t.Run("empty username is absent", func(t *testing.T) {
		_, ok := FromContext(New(t.Context(), ""))

		require.False(t, ok)
	})
}
