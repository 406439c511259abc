package httpdto

import (
	"time"

	"bizlist/internal/domain/conversation"
)

// MessageView is the wire shape of one chat message.
type MessageView struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessageView(c conversation.Conversation) MessageView {
	return MessageView{
		Sender:    c.Sender,
		Content:   c.Message,
		Timestamp: c.Timestamp,
	}
}

func NewMessageViews(msgs []conversation.Conversation) []MessageView {
	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, NewMessageView(m))
	}
	return views
}

// LatestChat groups a session's most recent messages for the admin dashboard.
type LatestChat struct {
	Email    string        `json:"email"`
	Messages []MessageView `json:"messages"`
}
