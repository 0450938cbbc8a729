package reels

import (
	"context"

	"reelstream/internal/domain"
	"reelstream/internal/repository"
)

// Gateway is the persistence seam the resolver talks to. A
// disconnected gateway returns zero results from every call instead of
// erroring; the resolver treats those uniformly as "no usable result".
type Gateway interface {
	IsConnected() bool
	Save(ctx context.Context, reel *domain.Reel) (string, error)
	List(ctx context.Context, f repository.ReelFilters) []domain.Reel
	Like(ctx context.Context, reelID, userID string) bool
	Comment(ctx context.Context, reelID, userID, text string) bool
	Search(ctx context.Context, term string, limit int) []domain.Reel
	Stats(ctx context.Context) domain.ReelStats
}

// Fetcher is the external video source. Empty slices, never errors.
type Fetcher interface {
	FetchTrending(count int) []domain.Reel
	FetchByHashtag(tag string, count int) []domain.Reel
	FetchByUser(username string, count int) []domain.Reel
}
