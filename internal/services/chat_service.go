package services

import (
	"context"
	"encoding/json"
	"time"

	"astro-chat/internal/domain/message"
	"astro-chat/internal/rabbitmq"
	"astro-chat/internal/repository"
	astro_errors "astro-chat/pkg/errors"
	"astro-chat/pkg/logger"

	"github.com/google/uuid"
)

type ChatService struct {
	accountRepo repository.AccountRepository
	messageRepo repository.MessageRepository
	publisher   rabbitmq.NotificationPublisher
	logger      *logger.Logger
}

func NewChatService(accountRepo repository.AccountRepository, messageRepo repository.MessageRepository, publisher rabbitmq.NotificationPublisher, l *logger.Logger) *ChatService {
	return &ChatService{
		accountRepo: accountRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      l,
	}
}

// SendMessage persists a message between two existing accounts and
// publishes a NEW_MESSAGE notification once per participant: to the
// receiver, and to the sender as a delivery confirmation. The sender is
// checked before the receiver and the first missing account aborts the
// call. Notification publishing is best-effort; the stored message is
// the source of truth.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, body string) (message.Message, error) {
	if body == "" {
		return message.Message{}, astro_errors.ErrInvalidInput
	}

	if _, err := s.accountRepo.GetByID(ctx, senderID); err != nil {
		return message.Message{}, err
	}
	if _, err := s.accountRepo.GetByID(ctx, receiverID); err != nil {
		return message.Message{}, err
	}

	now := time.Now().UTC()
	m := message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		Timestamp:  now,
		Read:       false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.messageRepo.Create(ctx, &m); err != nil {
		return message.Message{}, err
	}

	event := message.NewNotification(m)
	s.publisher.PublishNotification(ctx, message.RoutingKey(receiverID), event)
	s.publisher.PublishNotification(ctx, message.RoutingKey(senderID), event)

	return m, nil
}

// MessagesBetween returns every message exchanged between two accounts
// in either direction, oldest first. Reading does not transition the
// read flag.
func (s *ChatService) MessagesBetween(ctx context.Context, a, b uuid.UUID) ([]message.Message, error) {
	messages, err := s.messageRepo.GetBetweenAccounts(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []message.Message{}
	}
	return messages, nil
}

// HandleNotification is the demonstration fan-in consumer: it receives
// every notification from the catch-all binding and logs it. A live
// socket gateway would replace this with per-user delivery.
func (s *ChatService) HandleNotification(body []byte) error {
	var event message.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	s.logger.Infof("Notification received: type=%s message=%s from=%s to=%s", event.Type, event.MessageID, event.SenderID, event.ReceiverID)
	return nil
}
