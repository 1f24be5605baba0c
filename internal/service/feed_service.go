package service

import (
	"context"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/repository"
)

// feedLimit is how many board entries the public feed serves.
const feedLimit = 20

type FeedService struct {
	feedRepo repository.FeedRepository
}

func NewFeedService(feedRepo repository.FeedRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

// Recent returns the newest completed-swap entries for the public board.
func (s *FeedService) Recent(ctx context.Context) ([]domain.FeedEntry, error) {
	entries, err := s.feedRepo.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.FeedEntry{}
	}
	return entries, nil
}
