package httpdto

// SendMessageRequest is used for POST /api/messages/sendMessage
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// MessageDTO represents a chat message in API responses
type MessageDTO struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Read       bool   `json:"read"`
}
