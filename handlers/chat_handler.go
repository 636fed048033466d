package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawpick-backend/models"
	"lawpick-backend/service"
)

// ChatHandler handles POST /api/chat
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest carries either a full conversation, a single message, or both;
// Message is appended as the newest user turn
type ChatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
	Message  string               `json:"message"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	messages := req.Messages
	if req.Message != "" {
		messages = append(messages, models.ChatMessage{Role: models.ChatRoleUser, Content: req.Message})
	}

	result, err := h.chatService.Reply(c.Request.Context(), messages)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Reply,
		"meta":    gin.H{"source": result.Source},
	})
}
