package reels

import "reelstream/internal/domain"

// SaveReelRequest is the body for POST /reels/save. Only the video URL
// is required; everything else defaults like any other raw payload.
type SaveReelRequest struct {
	VideoURL     string        `json:"videoUrl" binding:"required"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Description  string        `json:"description"`
	Author       domain.Author `json:"author"`
	Stats        domain.Stats  `json:"stats"`
	Duration     int           `json:"duration"`
	Hashtags     []string      `json:"hashtags"`
}

func (r SaveReelRequest) toDomain() *domain.Reel {
	reel := &domain.Reel{
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		Description:  r.Description,
		Author:       r.Author,
		Stats:        r.Stats,
		Duration:     r.Duration,
		Hashtags:     r.Hashtags,
		Comments:     []domain.Comment{},
	}
	if reel.Description == "" {
		reel.Description = "Saved reel"
	}
	if reel.Author.Username == "" {
		reel.Author.Username = "anonymous"
	}
	if reel.Hashtags == nil {
		reel.Hashtags = []string{}
	}
	return reel
}

type LikeRequest struct {
	UserID string `json:"user_id"`
}

type CommentRequest struct {
	UserID  string `json:"user_id"`
	Comment string `json:"comment"`
}
