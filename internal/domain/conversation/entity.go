package conversation

import "time"

// Conversation is one chat message between an end user and the admin desk.
// Rows are append-only; nothing in the system updates or deletes them.
//
// UserEmail holds the chat session identifier by convention, which is not
// necessarily an email address. Sender is an open string ("user" and "Admin"
// are conventions, not enforced values).
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"column:user_email;index" json:"user_email"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func (Conversation) TableName() string {
	return "conversations"
}
