package websocket

import (
	"context"
	"encoding/json"
	"net/http"

	"bizlist/internal/services"
	"bizlist/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the chat relay endpoints. Every accepted frame is persisted
// through the ChatService before fan-out; a malformed frame is logged and
// dropped without closing the session.
type Handler struct {
	hub   *Hub
	chats *services.ChatService
	log   *logger.Logger
}

func NewHandler(hub *Hub, chats *services.ChatService, log *logger.Logger) *Handler {
	return &Handler{hub: hub, chats: chats, log: log}
}

// ServeUser handles GET /ws/chat/:client_id. Admins are told about the new
// session, then every frame the user sends is stored and relayed to all
// connected admins.
func (h *Handler) ServeUser(c *gin.Context) {
	clientID := c.Param("client_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn, clientID)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.RegisterUser(client)
	go client.WriteLoop(ctx)

	h.hub.BroadcastToAdmins(AdminEvent{Type: EventNewChat, Client: clientID})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var frame UserFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Content == "" || frame.Sender == "" {
			h.log.Warnf("dropping malformed frame from client %s", clientID)
			continue
		}

		// a persistence failure is logged by the service; the frame is
		// still relayed
		_ = h.chats.StoreMessage(ctx, clientID, frame.Content, frame.Sender)
		h.hub.BroadcastToAdmins(AdminEvent{
			Type:    EventMessage,
			Client:  clientID,
			Sender:  frame.Sender,
			Content: frame.Content,
		})
	}

	h.hub.UnregisterUser(client)
	h.log.Infof("client %s disconnected", clientID)
}

// ServeAdmin handles GET /ws/admin. An admin session receives the relayed
// user traffic and can push "admin_message" frames to a named session. A
// frame naming a client that is not connected is silently discarded.
func (h *Handler) ServeAdmin(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn, uuid.New().String())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.RegisterAdmin(client)
	go client.WriteLoop(ctx)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var frame AdminFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Type == "" {
			h.log.Warnf("dropping malformed frame from admin session")
			continue
		}
		if frame.Type != FrameAdminMessage || frame.Client == "" || frame.Content == "" {
			continue
		}

		delivered := h.hub.SendToUser(frame.Client, UserEvent{
			Sender:  SenderAdmin,
			Content: frame.Content,
		})
		if delivered {
			if err := h.chats.StoreMessage(ctx, frame.Client, frame.Content, SenderAdmin); err != nil {
				h.log.Errorf("store admin message for %s: %s", frame.Client, err)
			}
		}
	}

	h.hub.UnregisterAdmin(client)
	h.log.Infof("admin session disconnected")
}
