package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/internal/services"
	"github.com/reliefmap/reliefmap/pkg/errors"
	"github.com/reliefmap/reliefmap/pkg/response"
)

// MessageHandler exposes the member↔admin chat surface.
type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// chatIdentity resolves the name a caller converses under. Members chat as
// themselves; every admin shares the single admin channel, which is also the
// recipient name members address.
func chatIdentity(c *gin.Context) string {
	if currentRole(c).IsAdmin() {
		return services.AdminPartnerName
	}
	return currentUsername(c)
}

type sendMessageRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Content   string `json:"content" validate:"required,max=2000"`
}

// POST /api/messages
// The sender is always the session identity; any caller-supplied sender is
// discarded.
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	msg := &models.Message{
		Sender:    chatIdentity(c),
		Recipient: strings.TrimSpace(req.Recipient),
		Content:   req.Content,
		Role:      string(currentRole(c)),
	}

	stored, err := h.messages.Send(requestContext(c), msg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stored)
}

// GET /api/messages/partners
func (h *MessageHandler) Partners(c *gin.Context) {
	partners, err := h.messages.GetChatPartners(requestContext(c), chatIdentity(c), currentRole(c).IsAdmin())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, partners)
}

// GET /api/messages/conversation?partner=<name>
// Fetching a conversation marks the partner's messages to the caller as read.
func (h *MessageHandler) Conversation(c *gin.Context) {
	partner := strings.TrimSpace(c.Query("partner"))
	if partner == "" {
		response.Error(c, errors.NewBadRequest("partner is required"))
		return
	}

	msgs, err := h.messages.GetConversation(requestContext(c), chatIdentity(c), partner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

// GET /api/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.messages.GetUnreadCount(requestContext(c), chatIdentity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, count)
}
