package tiktok

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"reelstream/internal/domain"
)

// videoURLCandidates are tried in order; the first non-empty
// http-prefixed string wins.
var videoURLCandidates = [][]string{
	{"video", "downloadAddr"},
	{"video", "playAddr"},
	{"videoUrl"},
	{"video", "url"},
}

// Normalize converts an arbitrary raw video payload into the canonical
// reel shape. It returns nil when no playable video URL can be
// resolved; every other missing field degrades to its default.
// maxHashtags caps the extracted hashtag list.
func Normalize(raw map[string]any, maxHashtags int) *domain.Reel {
	if raw == nil {
		return nil
	}

	videoURL := resolveVideoURL(raw)
	if videoURL == "" {
		return nil
	}

	reel := &domain.Reel{
		ID:       stringAt(raw, []string{"id"}, fmt.Sprintf("video_%d", rand.Intn(90000)+10000)),
		VideoURL: videoURL,
		ThumbnailURL: firstString(raw,
			[][]string{{"video", "cover"}, {"thumbnailUrl"}, {"author", "avatarThumb"}},
			"https://i.pravatar.cc/150"),
		Description: stringAt(raw, []string{"desc"}, "TikTok Video"),
		Author: domain.Author{
			Username: stringAt(raw, []string{"author", "uniqueId"}, "tiktok_user"),
			Nickname: stringAt(raw, []string{"author", "nickname"}, "TikTok User"),
			Avatar:   stringAt(raw, []string{"author", "avatarThumb"}, "https://i.pravatar.cc/150"),
		},
		Stats: domain.Stats{
			Likes:    intAt(raw, []string{"stats", "diggCount"}, randRange(1000, 100000)),
			Comments: intAt(raw, []string{"stats", "commentCount"}, randRange(50, 5000)),
			Shares:   intAt(raw, []string{"stats", "shareCount"}, randRange(20, 2000)),
			Views:    intAt(raw, []string{"stats", "playCount"}, randRange(10000, 1000000)),
		},
		Duration:  intAt(raw, []string{"video", "duration"}, randRange(15, 60)),
		Hashtags:  extractHashtags(raw, maxHashtags),
		Comments:  []domain.Comment{},
		CreatedAt: createdAt(raw),
		IsMock:    false,
	}
	return reel
}

func resolveVideoURL(raw map[string]any) string {
	for _, path := range videoURLCandidates {
		if s := stringAt(raw, path, ""); s != "" && strings.HasPrefix(s, "http") {
			return s
		}
	}
	return ""
}

func extractHashtags(raw map[string]any, limit int) []string {
	tags := []string{}
	challenges, ok := valueAt(raw, []string{"challenges"}).([]any)
	if !ok {
		return tags
	}
	for _, c := range challenges {
		m, ok := c.(map[string]any)
		if !ok {
			continue
		}
		title, ok := m["title"].(string)
		if !ok || title == "" {
			continue
		}
		tags = append(tags, title)
		if len(tags) >= limit {
			break
		}
	}
	return tags
}

func createdAt(raw map[string]any) time.Time {
	if s := stringAt(raw, []string{"createTime"}, ""); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	if n := intAt(raw, []string{"createTime"}, 0); n > 0 {
		return time.Unix(int64(n), 0)
	}
	return time.Now()
}

// valueAt walks nested maps along path, returning nil when any hop is
// missing or not a map.
func valueAt(raw map[string]any, path []string) any {
	var cur any = raw
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func stringAt(raw map[string]any, path []string, fallback string) string {
	if s, ok := valueAt(raw, path).(string); ok && s != "" {
		return s
	}
	return fallback
}

func intAt(raw map[string]any, path []string, fallback int) int {
	switch v := valueAt(raw, path).(type) {
	case float64:
		if v >= 0 {
			return int(v)
		}
	case int:
		if v >= 0 {
			return v
		}
	}
	return fallback
}

func firstString(raw map[string]any, paths [][]string, fallback string) string {
	for _, path := range paths {
		if s := stringAt(raw, path, ""); s != "" {
			return s
		}
	}
	return fallback
}
