package tiktok

import (
	"fmt"
	"math/rand"
	"time"

	"reelstream/internal/domain"
)

// SampleVideoURLs is the fixed allow-list mock reels draw from. Only
// known-playable URLs appear here; a mock reel must never point at a
// constructed or untrusted address.
var SampleVideoURLs = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
}

// GenerateMock produces count synthetic reels tagged with the given
// context label. Ids are unique within one call, not across calls.
func GenerateMock(count int, contextLabel string) []domain.Reel {
	reels := make([]domain.Reel, 0, max(count, 0))

	for i := 0; i < count; i++ {
		userN := rand.Intn(100) + 1
		reels = append(reels, domain.Reel{
			ID:           fmt.Sprintf("fallback_%s_%d", contextLabel, i),
			VideoURL:     SampleVideoURLs[rand.Intn(len(SampleVideoURLs))],
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/400/700?random=%d", i),
			Description:  fmt.Sprintf("Awesome %s video #%d 🎥", contextLabel, i+1),
			Author: domain.Author{
				Username: fmt.Sprintf("user%d", userN),
				Nickname: fmt.Sprintf("User %d", userN),
				Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?img=%d", rand.Intn(70)+1),
			},
			Stats: domain.Stats{
				Likes:    randRange(1000, 100000),
				Comments: randRange(50, 5000),
				Shares:   randRange(20, 2000),
				Views:    randRange(10000, 1000000),
			},
			Duration:  randRange(15, 60),
			Hashtags:  []string{contextLabel, "viral", "fyp"},
			Comments:  []domain.Comment{},
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(20*24)) * time.Hour),
			IsMock:    true,
		})
	}
	return reels
}

// MockStats synthesizes a plausible aggregate for the stats fallback.
func MockStats() domain.ReelStats {
	total := int64(randRange(50, 500))
	likes := total * int64(randRange(100, 5000))
	return domain.ReelStats{
		TotalReels:      total,
		TotalLikes:      likes,
		AvgLikesPerReel: float64(likes) / float64(total),
	}
}

// randRange returns a value in [lo, hi].
func randRange(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}
