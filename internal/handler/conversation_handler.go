package handler

import (
	"net/http"

	"bizlist/internal/services"
	"bizlist/internal/transport/httpdto"
	"bizlist/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	service *services.ChatService
	log     *logger.Logger
}

func NewConversationHandler(service *services.ChatService, log *logger.Logger) *ConversationHandler {
	return &ConversationHandler{service: service, log: log}
}

// GetConversations serves a session's messages from the last seven days,
// oldest first.
func (h *ConversationHandler) GetConversations(c *gin.Context) {
	userEmail := c.Param("user_email")

	msgs, err := h.service.RecentConversations(c.Request.Context(), userEmail)
	if err != nil {
		h.log.Errorf("get conversations for %s: %s", userEmail, err)
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageViews(msgs))
}

// LatestChats serves the admin dashboard overview: the most recently active
// sessions with their trailing messages.
func (h *ConversationHandler) LatestChats(c *gin.Context) {
	var q struct {
		Limit int `form:"limit,default=10"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	summaries, err := h.service.LatestChats(c.Request.Context(), q.Limit)
	if err != nil {
		h.log.Errorf("latest chats: %s", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
		return
	}

	chats := make([]httpdto.LatestChat, 0, len(summaries))
	for _, s := range summaries {
		chats = append(chats, httpdto.LatestChat{
			Email:    s.Email,
			Messages: httpdto.NewMessageViews(s.Messages),
		})
	}
	c.JSON(http.StatusOK, chats)
}
