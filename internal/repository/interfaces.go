package repository

import (
	"context"
	"time"

	"bizlist/internal/domain/conversation"
	"bizlist/internal/domain/listing"
)

// ListingFilter holds the optional, conjunctive search predicates. Nil means
// the predicate is not applied.
type ListingFilter struct {
	Keyword     *string
	MinPrice    *float64
	MaxPrice    *float64
	MinTurnover *float64
	MaxTurnover *float64
	Location    *string
	Industry    *string
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	GetByRefID(ctx context.Context, refID string) (listing.Listing, error)
	List(ctx context.Context, skip, limit int) ([]listing.Listing, error)
	Search(ctx context.Context, f ListingFilter, skip, limit int) ([]listing.Listing, error)
	Update(ctx context.Context, refID string, changes map[string]interface{}) (listing.Listing, error)
	Delete(ctx context.Context, refID string) (listing.Listing, error)
}

type ConversationRepository interface {
	Store(ctx context.Context, c *conversation.Conversation) error
	RecentByUser(ctx context.Context, userEmail string, since time.Time) ([]conversation.Conversation, error)
	ActiveUsers(ctx context.Context, limit int) ([]string, error)
	LatestByUser(ctx context.Context, userEmail string, limit int) ([]conversation.Conversation, error)
}
