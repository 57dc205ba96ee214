package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/chat"
)

// ChatInput defines the structure of the JSON request body.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// GetMessages returns the conversation, oldest first.
// GET /v1/assistant/messages
func (h *Handlers) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.Chat.Messages()})
}

// ChatAssistant handles the interaction with the AI Assistant.
// POST /v1/assistant/chat
func (h *Handlers) ChatAssistant(c *gin.Context) {
	// 1. Parse Input
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Send through the conversation (the "Brain").
	// A bridge failure still yields a reply: the fixed fallback text.
	// Only an overlapping send or a blank message is rejected here.
	reply, err := h.Chat.Send(c.Request.Context(), input.Message)
	switch {
	case errors.Is(err, chat.ErrSendInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Aguarde a resposta anterior."})
		return
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	case err != nil:
		h.Log.Error().Err(err).Msg("assistant send failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant unavailable"})
		return
	}

	// 3. Return the Answer
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ClearChat resets the history to the single seed greeting.
// POST /v1/assistant/clear
func (h *Handlers) ClearChat(c *gin.Context) {
	seed := h.Chat.Clear()
	c.JSON(http.StatusOK, gin.H{"messages": []any{seed}})
}
