package repository

import (
	"context"
	"time"

	"bizlist/internal/domain/conversation"

	"gorm.io/gorm"
)

type GormConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &GormConversationRepository{db: db}
}

func (r *GormConversationRepository) Store(ctx context.Context, c *conversation.Conversation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormConversationRepository) RecentByUser(ctx context.Context, userEmail string, since time.Time) ([]conversation.Conversation, error) {
	messages := []conversation.Conversation{}
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND timestamp > ?", userEmail, since).
		Order("timestamp ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ActiveUsers returns up to limit distinct session identifiers ordered by the
// recency of their newest message.
func (r *GormConversationRepository) ActiveUsers(ctx context.Context, limit int) ([]string, error) {
	var users []string
	err := r.db.WithContext(ctx).
		Model(&conversation.Conversation{}).
		Group("user_email").
		Order("MAX(timestamp) DESC").
		Limit(limit).
		Pluck("user_email", &users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// LatestByUser returns the user's newest messages, newest first.
func (r *GormConversationRepository) LatestByUser(ctx context.Context, userEmail string, limit int) ([]conversation.Conversation, error) {
	messages := []conversation.Conversation{}
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
