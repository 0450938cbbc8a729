package tiktok

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMockCount(t *testing.T) {
	for _, count := range []int{0, 1, 5, 20} {
		reels := GenerateMock(count, "trending")
		require.Len(t, reels, count)
	}
}

func TestGenerateMockShape(t *testing.T) {
	allowList := map[string]bool{}
	for _, u := range SampleVideoURLs {
		allowList[u] = true
	}

	reels := GenerateMock(25, "dance")
	for i, r := range reels {
		require.True(t, r.IsMock)
		require.Equal(t, fmt.Sprintf("fallback_dance_%d", i), r.ID)
		require.True(t, allowList[r.VideoURL], "video url %q not in allow-list", r.VideoURL)
		require.Equal(t, []string{"dance", "viral", "fyp"}, r.Hashtags)
		require.NotEmpty(t, r.ThumbnailURL)
		require.NotEmpty(t, r.Author.Username)

		require.GreaterOrEqual(t, r.Stats.Likes, 1000)
		require.LessOrEqual(t, r.Stats.Likes, 100000)
		require.GreaterOrEqual(t, r.Stats.Comments, 50)
		require.LessOrEqual(t, r.Stats.Comments, 5000)
		require.GreaterOrEqual(t, r.Stats.Shares, 20)
		require.LessOrEqual(t, r.Stats.Shares, 2000)
		require.GreaterOrEqual(t, r.Stats.Views, 10000)
		require.LessOrEqual(t, r.Stats.Views, 1000000)
		require.GreaterOrEqual(t, r.Duration, 15)
		require.LessOrEqual(t, r.Duration, 60)
	}
}

func TestGenerateMockUniqueIDsWithinCall(t *testing.T) {
	reels := GenerateMock(50, "fyp")
	seen := map[string]bool{}
	for _, r := range reels {
		require.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestMockStats(t *testing.T) {
	stats := MockStats()
	require.Greater(t, stats.TotalReels, int64(0))
	require.Greater(t, stats.TotalLikes, int64(0))
	require.InDelta(t, float64(stats.TotalLikes)/float64(stats.TotalReels), stats.AvgLikesPerReel, 0.0001)
}
