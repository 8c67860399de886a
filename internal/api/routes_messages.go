package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerMessageRoutes(api *gin.RouterGroup, messages *handlers.MessageHandler) {
	api.POST("/messages", messages.Send)
	api.GET("/messages/partners", messages.Partners)
	api.GET("/messages/conversation", messages.Conversation)
	api.GET("/messages/unread-count", messages.UnreadCount)
}
