package domain

import "time"

// Reel is the canonical short-video record. Every data source (database,
// external fetch, mock generator) produces this shape.
type Reel struct {
	ID           string    `json:"id" bson:"-"`
	VideoURL     string    `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Description  string    `json:"description" bson:"description"`
	Author       Author    `json:"author" bson:"author"`
	Stats        Stats     `json:"stats" bson:"stats"`
	Duration     int       `json:"duration" bson:"duration"`
	Hashtags     []string  `json:"hashtags" bson:"hashtags"`
	Likes        []string  `json:"likes,omitempty" bson:"likes,omitempty"`
	Comments     []Comment `json:"comments" bson:"comments"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"-" bson:"updated_at"`
	IsMock       bool      `json:"isMock" bson:"isMock"`

	// Score is set only on full-text search results.
	Score float64 `json:"score,omitempty" bson:"score,omitempty"`
}

type Author struct {
	Username string `json:"username" bson:"username"`
	Nickname string `json:"nickname" bson:"nickname"`
	Avatar   string `json:"avatar" bson:"avatar"`
}

type Stats struct {
	Likes    int `json:"likes" bson:"likes"`
	Comments int `json:"comments" bson:"comments"`
	Shares   int `json:"shares" bson:"shares"`
	Views    int `json:"views" bson:"views"`
}

type Comment struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ReelStats is the aggregate returned by the stats operation.
type ReelStats struct {
	TotalReels      int64   `json:"total_reels"`
	TotalLikes      int64   `json:"total_likes"`
	AvgLikesPerReel float64 `json:"avg_likes_per_reel"`
}

// Source tags reported on every API response.
const (
	SourceDatabase = "database"
	SourceMock     = "mock_data"
)
