package services

import (
	"context"
	"time"

	"bizlist/internal/domain/conversation"
	"bizlist/internal/repository"
	"bizlist/pkg/logger"
)

// recentWindow bounds how far back conversation history is served.
const recentWindow = 7 * 24 * time.Hour

// latestPerUser is how many trailing messages the admin dashboard sees per
// session.
const latestPerUser = 5

type ChatService struct {
	repo repository.ConversationRepository
	log  *logger.Logger
	now  func() time.Time
}

func NewChatService(repo repository.ConversationRepository, log *logger.Logger) *ChatService {
	return &ChatService{repo: repo, log: log, now: time.Now}
}

func (s *ChatService) WithClock(now func() time.Time) *ChatService {
	s.now = now
	return s
}

// StoreMessage appends one chat message. userEmail is the session identifier
// of the end-user side of the exchange, whichever side sent it.
func (s *ChatService) StoreMessage(ctx context.Context, userEmail, content, sender string) error {
	msg := &conversation.Conversation{
		UserEmail: userEmail,
		Message:   content,
		Sender:    sender,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Store(ctx, msg); err != nil {
		s.log.Errorf("store message for %s: %s", userEmail, err)
		return err
	}
	return nil
}

// RecentConversations returns the session's messages from the last seven
// days in ascending timestamp order.
func (s *ChatService) RecentConversations(ctx context.Context, userEmail string) ([]conversation.Conversation, error) {
	since := s.now().UTC().Add(-recentWindow)
	return s.repo.RecentByUser(ctx, userEmail, since)
}

// ChatSummary is one session's trailing messages, oldest first.
type ChatSummary struct {
	Email    string
	Messages []conversation.Conversation
}

// LatestChats returns up to limit distinct sessions ordered by most recent
// activity, each carrying its newest messages in chronological order.
func (s *ChatService) LatestChats(ctx context.Context, limit int) ([]ChatSummary, error) {
	users, err := s.repo.ActiveUsers(ctx, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(users))
	for _, user := range users {
		msgs, err := s.repo.LatestByUser(ctx, user, latestPerUser)
		if err != nil {
			return nil, err
		}
		// newest-first from the repository; flip to chronological
		for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
			msgs[i], msgs[j] = msgs[j], msgs[i]
		}
		summaries = append(summaries, ChatSummary{Email: user, Messages: msgs})
	}
	return summaries, nil
}
