package services

import (
	"context"
	"time"

	"bizlist/internal/domain/listing"
	"bizlist/internal/repository"
	"bizlist/pkg/logger"
)

type ListingService struct {
	repo repository.ListingRepository
	log  *logger.Logger
	now  func() time.Time
}

func NewListingService(repo repository.ListingRepository, log *logger.Logger) *ListingService {
	return &ListingService{repo: repo, log: log, now: time.Now}
}

// WithClock overrides the service clock. Ref-id generation and creation
// timestamps are derived from it, so tests can pin the instant.
func (s *ListingService) WithClock(now func() time.Time) *ListingService {
	s.now = now
	return s
}

// Create assigns ref_id and creation_datetime and persists the listing. The
// stored record, including the storage-assigned id, is returned.
func (s *ListingService) Create(ctx context.Context, l listing.Listing) (listing.Listing, error) {
	now := s.now().UTC()
	l.RefID = listing.GenerateRefID(l.Location, now)
	l.CreationDatetime = now

	if err := s.repo.Create(ctx, &l); err != nil {
		s.log.Errorf("create listing %s: %s", l.RefID, err)
		return listing.Listing{}, err
	}
	return l, nil
}

func (s *ListingService) Search(ctx context.Context, f repository.ListingFilter, skip, limit int) ([]listing.Listing, error) {
	return s.repo.Search(ctx, f, skip, limit)
}

func (s *ListingService) List(ctx context.Context, skip, limit int) ([]listing.Listing, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *ListingService) GetByRefID(ctx context.Context, refID string) (listing.Listing, error) {
	return s.repo.GetByRefID(ctx, refID)
}

// Update applies a partial change set. ref_id, id and creation_datetime are
// never touched; the repository drops them even if present in the map.
func (s *ListingService) Update(ctx context.Context, refID string, changes map[string]interface{}) (listing.Listing, error) {
	return s.repo.Update(ctx, refID, changes)
}

// Delete removes the listing and returns it as it existed before deletion.
func (s *ListingService) Delete(ctx context.Context, refID string) (listing.Listing, error) {
	return s.repo.Delete(ctx, refID)
}
