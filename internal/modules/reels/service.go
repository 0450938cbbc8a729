package reels

import (
	"context"
	"fmt"
	"time"

	"reelstream/internal/domain"
	"reelstream/internal/repository"
	"reelstream/internal/tiktok"

	"github.com/sirupsen/logrus"
)

// Service implements the fallback cascade: database first, then the
// external source (for the operations that have one), then the mock
// generator. Every result is paired with its source tag. The cascade is
// purely value-based — collaborators never return errors to this layer.
type Service struct {
	repo    Gateway
	fetcher Fetcher
}

func NewService(repo Gateway, fetcher Fetcher) *Service {
	return &Service{repo: repo, fetcher: fetcher}
}

// ListReels returns reels for the given filters and the source that
// served them. An empty database result falls through to the external
// source and then to generated reels, so the endpoint always has
// content.
func (s *Service) ListReels(ctx context.Context, f repository.ReelFilters) ([]domain.Reel, string) {
	if s.repo.IsConnected() {
		if reels := s.repo.List(ctx, f); len(reels) > 0 {
			return reels, domain.SourceDatabase
		}
	}

	if reels := s.fetchExternal(f); len(reels) > 0 {
		logrus.WithField("context", listContext(f)).Info("serving externally fetched reels")
		return reels, domain.SourceMock
	}

	return tiktok.GenerateMock(f.Limit, listContext(f)), domain.SourceMock
}

// SearchReels runs full-text search. The external source has no search
// operation, so a miss degrades straight to generated reels tagged with
// the query.
func (s *Service) SearchReels(ctx context.Context, term string, limit int) ([]domain.Reel, string) {
	if s.repo.IsConnected() {
		if reels := s.repo.Search(ctx, term, limit); len(reels) > 0 {
			return reels, domain.SourceDatabase
		}
	}
	return tiktok.GenerateMock(limit, term), domain.SourceMock
}

// SaveReel persists a reel when the database is available and otherwise
// acknowledges with a synthesized local id. An absent database is never
// reported as a write failure.
func (s *Service) SaveReel(ctx context.Context, reel *domain.Reel) (string, string) {
	if s.repo.IsConnected() {
		if id, err := s.repo.Save(ctx, reel); err == nil {
			return id, domain.SourceDatabase
		}
	}
	return fmt.Sprintf("local_%d", time.Now().UnixNano()), domain.SourceMock
}

// LikeReel reports where the like landed. A miss (disconnected,
// unknown id, or an already-liked reel) degrades to a mock
// acknowledgment rather than an error.
func (s *Service) LikeReel(ctx context.Context, reelID, userID string) string {
	if s.repo.IsConnected() && s.repo.Like(ctx, reelID, userID) {
		return domain.SourceDatabase
	}
	return domain.SourceMock
}

// CommentReel appends a comment, with the same degradation as LikeReel.
func (s *Service) CommentReel(ctx context.Context, reelID, userID, text string) string {
	if s.repo.IsConnected() && s.repo.Comment(ctx, reelID, userID, text) {
		return domain.SourceDatabase
	}
	return domain.SourceMock
}

// GetStats returns aggregate stats. A connected gateway is always
// authoritative, zeroes included; otherwise synthetic stats keep the
// shape populated under the mock_data tag.
func (s *Service) GetStats(ctx context.Context) (domain.ReelStats, string) {
	if s.repo.IsConnected() {
		return s.repo.Stats(ctx), domain.SourceDatabase
	}
	return tiktok.MockStats(), domain.SourceMock
}

func (s *Service) fetchExternal(f repository.ReelFilters) []domain.Reel {
	if s.fetcher == nil {
		return nil
	}
	switch {
	case f.Hashtag != "":
		return s.fetcher.FetchByHashtag(f.Hashtag, f.Limit)
	case f.Username != "":
		return s.fetcher.FetchByUser(f.Username, f.Limit)
	default:
		return s.fetcher.FetchTrending(f.Limit)
	}
}

func listContext(f repository.ReelFilters) string {
	switch {
	case f.Hashtag != "":
		return f.Hashtag
	case f.Username != "":
		return f.Username
	default:
		return "trending"
	}
}
