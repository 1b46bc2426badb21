package message

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the messages table. Messages are immutable once
// created; there is no edit or delete path. Ordering key is Timestamp
// ascending.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ReceiverID uuid.UUID `gorm:"type:uuid;index;not null"`
	Body       string    `gorm:"not null"`
	Timestamp  time.Time `gorm:"index;not null"`
	Read       bool      `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Message) TableName() string {
	return "messages"
}

// NotificationTypeNewMessage is the only notification type emitted today.
const NotificationTypeNewMessage = "NEW_MESSAGE"

// NotificationEvent is the ephemeral broker payload announcing a new
// message. It is built from a persisted Message and published once per
// participant routing key; it is never stored.
type NotificationEvent struct {
	MessageID  string `json:"messageId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Body       string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type"`
}

// NewNotification builds the NEW_MESSAGE event for a stored message.
func NewNotification(m Message) NotificationEvent {
	return NotificationEvent{
		MessageID:  m.ID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Body:       m.Body,
		Timestamp:  m.Timestamp.UTC().Format(time.RFC3339Nano),
		Type:       NotificationTypeNewMessage,
	}
}

// RoutingKey returns the broker address for a participant,
// of the form user.<accountId>.
func RoutingKey(accountID uuid.UUID) string {
	return "user." + accountID.String()
}
