package tiktok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRejectsWithoutPlayableURL(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"desc": "no video here"},
		{"video": map[string]any{"downloadAddr": ""}},
		{"video": map[string]any{"downloadAddr": "ftp://nope"}},
		{"videoUrl": 42},
	}
	for _, raw := range cases {
		require.Nil(t, Normalize(raw, 3))
	}
}

func TestNormalizeURLCandidateOrder(t *testing.T) {
	raw := map[string]any{
		"video": map[string]any{
			"downloadAddr": "https://cdn.example.com/dl.mp4",
			"playAddr":     "https://cdn.example.com/play.mp4",
		},
		"videoUrl": "https://cdn.example.com/direct.mp4",
	}
	reel := Normalize(raw, 3)
	require.NotNil(t, reel)
	require.Equal(t, "https://cdn.example.com/dl.mp4", reel.VideoURL)

	// Drop the first candidate; the next one wins.
	delete(raw["video"].(map[string]any), "downloadAddr")
	reel = Normalize(raw, 3)
	require.NotNil(t, reel)
	require.Equal(t, "https://cdn.example.com/play.mp4", reel.VideoURL)
}

func TestNormalizeDefaults(t *testing.T) {
	reel := Normalize(map[string]any{
		"videoUrl": "https://cdn.example.com/clip.mp4",
	}, 3)
	require.NotNil(t, reel)
	require.Equal(t, "TikTok Video", reel.Description)
	require.Equal(t, "tiktok_user", reel.Author.Username)
	require.Equal(t, "TikTok User", reel.Author.Nickname)
	require.False(t, reel.IsMock)
	require.NotNil(t, reel.Hashtags)
	require.Empty(t, reel.Hashtags)
	require.GreaterOrEqual(t, reel.Stats.Likes, 0)
	require.False(t, reel.CreatedAt.IsZero())
}

func TestNormalizeExtractsFields(t *testing.T) {
	raw := map[string]any{
		"id":   "7123456789",
		"desc": "sunset timelapse",
		"video": map[string]any{
			"downloadAddr": "https://cdn.example.com/v.mp4",
			"cover":        "https://cdn.example.com/cover.jpg",
			"duration":     float64(42),
		},
		"author": map[string]any{
			"uniqueId":    "skywatcher",
			"nickname":    "Sky Watcher",
			"avatarThumb": "https://cdn.example.com/a.jpg",
		},
		"stats": map[string]any{
			"diggCount":    float64(1200),
			"commentCount": float64(80),
			"shareCount":   float64(30),
			"playCount":    float64(50000),
		},
	}
	reel := Normalize(raw, 3)
	require.NotNil(t, reel)
	require.Equal(t, "7123456789", reel.ID)
	require.Equal(t, "sunset timelapse", reel.Description)
	require.Equal(t, "https://cdn.example.com/cover.jpg", reel.ThumbnailURL)
	require.Equal(t, "skywatcher", reel.Author.Username)
	require.Equal(t, 1200, reel.Stats.Likes)
	require.Equal(t, 80, reel.Stats.Comments)
	require.Equal(t, 30, reel.Stats.Shares)
	require.Equal(t, 50000, reel.Stats.Views)
	require.Equal(t, 42, reel.Duration)
}

func TestNormalizeHashtagCap(t *testing.T) {
	raw := map[string]any{
		"videoUrl": "https://cdn.example.com/v.mp4",
		"challenges": []any{
			map[string]any{"title": "one"},
			map[string]any{"title": "two"},
			map[string]any{"title": "three"},
			map[string]any{"title": "four"},
			map[string]any{"title": "five"},
		},
	}
	reel := Normalize(raw, 3)
	require.NotNil(t, reel)
	require.Equal(t, []string{"one", "two", "three"}, reel.Hashtags)
}

func TestNormalizeMalformedChallenges(t *testing.T) {
	raw := map[string]any{
		"videoUrl":   "https://cdn.example.com/v.mp4",
		"challenges": []any{"not-a-map", map[string]any{"title": ""}, map[string]any{"title": "ok"}},
	}
	reel := Normalize(raw, 3)
	require.NotNil(t, reel)
	require.Equal(t, []string{"ok"}, reel.Hashtags)
}
