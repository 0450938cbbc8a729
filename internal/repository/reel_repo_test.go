package repository

import (
	"context"
	"testing"

	"reelstream/internal/domain"

	"github.com/stretchr/testify/require"
)

// The disconnected contract: a repository without a client reports
// disconnected and returns the zero result from every operation, never
// an error or a panic.
func TestDisconnectedRepository(t *testing.T) {
	repo := NewReelRepository(nil)
	ctx := context.Background()

	require.False(t, repo.IsConnected())

	// EnsureIndexes is a no-op.
	repo.EnsureIndexes(ctx)

	id, err := repo.Save(ctx, &domain.Reel{VideoURL: "https://cdn.example.com/v.mp4"})
	require.Empty(t, id)
	require.ErrorIs(t, err, ErrDisconnected)

	require.Nil(t, repo.List(ctx, ReelFilters{Limit: 10}))
	require.Nil(t, repo.Search(ctx, "anything", 10))
	require.False(t, repo.Like(ctx, "abc", "u1"))
	require.False(t, repo.Comment(ctx, "abc", "u1", "text"))

	stats := repo.Stats(ctx)
	require.Zero(t, stats.TotalReels)
	require.Zero(t, stats.TotalLikes)
	require.Zero(t, stats.AvgLikesPerReel)
}
