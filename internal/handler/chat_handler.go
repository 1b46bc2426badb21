package handler

import (
	"net/http"
	"time"

	"astro-chat/internal/domain/message"
	"astro-chat/internal/services"
	"astro-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles direct-messaging HTTP endpoints.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// SendMessage handles POST /api/messages/sendMessage.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid receiver id", "INVALID_REQUEST"))
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), identity.AccountID, receiverID, req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(toMessageDTO(m)))
}

// ViewMessages handles GET /api/messages/viewMessages?participantId=...
func (h *ChatHandler) ViewMessages(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	participant := c.Query("participantId")
	if participant == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("participantId is required", "INVALID_REQUEST"))
		return
	}

	participantID, err := uuid.Parse(participant)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid participant id", "INVALID_REQUEST"))
		return
	}

	messages, err := h.service.MessagesBetween(c.Request.Context(), identity.AccountID, participantID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]httpdto.MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = toMessageDTO(m)
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(dtos))
}

func toMessageDTO(m message.Message) httpdto.MessageDTO {
	return httpdto.MessageDTO{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Message:    m.Body,
		Timestamp:  m.Timestamp.UTC().Format(time.RFC3339Nano),
		Read:       m.Read,
	}
}
