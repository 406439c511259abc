package websocket

// UserFrame is what an end-user session sends: one chat message.
type UserFrame struct {
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

// AdminFrame is what an admin session sends. Only type "admin_message" is
// acted on; it requires Client and Content.
type AdminFrame struct {
	Type    string `json:"type"`
	Client  string `json:"client"`
	Content string `json:"content"`
}

// AdminEvent is pushed to admin sessions: "new_chat" when a user connects,
// "message" for every user frame relayed.
type AdminEvent struct {
	Type    string `json:"type"`
	Client  string `json:"client"`
	Sender  string `json:"sender,omitempty"`
	Content string `json:"content,omitempty"`
}

// UserEvent is pushed to a user session when an admin replies.
type UserEvent struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

const (
	EventNewChat = "new_chat"
	EventMessage = "message"

	FrameAdminMessage = "admin_message"

	SenderAdmin = "Admin"
)
