package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"astro-chat/internal/domain/account"
	"astro-chat/internal/domain/message"
	astro_errors "astro-chat/pkg/errors"
	"astro-chat/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, repo *fakeAccountRepo, email string) uuid.UUID {
	t.Helper()
	a := account.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), &a))
	return a.ID
}

func newTestChatService(accountRepo *fakeAccountRepo, messageRepo *fakeMessageRepo, pub *fakePublisher) *ChatService {
	return NewChatService(accountRepo, messageRepo, pub, logger.New(logger.DevelopmentMode))
}

func TestSendMessagePersistsAndNotifiesBothParticipants(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	messageRepo := newFakeMessageRepo()
	pub := &fakePublisher{}
	svc := newTestChatService(accountRepo, messageRepo, pub)
	ctx := context.Background()

	sender := newTestAccount(t, accountRepo, "alice@example.com")
	receiver := newTestAccount(t, accountRepo, "bob@example.com")

	m, err := svc.SendMessage(ctx, sender, receiver, "hello bob")
	require.NoError(t, err)

	assert.Equal(t, sender, m.SenderID)
	assert.Equal(t, receiver, m.ReceiverID)
	assert.Equal(t, "hello bob", m.Body)
	assert.False(t, m.Read)
	assert.Equal(t, 1, messageRepo.count())

	events := pub.published()
	require.Len(t, events, 2)
	assert.Equal(t, "user."+receiver.String(), events[0].routingKey)
	assert.Equal(t, "user."+sender.String(), events[1].routingKey)

	for _, e := range events {
		event, ok := e.payload.(message.NotificationEvent)
		require.True(t, ok)
		assert.Equal(t, message.NotificationTypeNewMessage, event.Type)
		assert.Equal(t, m.ID.String(), event.MessageID)
		assert.Equal(t, "hello bob", event.Body)
	}
}

func TestSendMessageUnknownSender(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	messageRepo := newFakeMessageRepo()
	pub := &fakePublisher{}
	svc := newTestChatService(accountRepo, messageRepo, pub)

	receiver := newTestAccount(t, accountRepo, "bob@example.com")

	_, err := svc.SendMessage(context.Background(), uuid.New(), receiver, "hello")
	assert.ErrorIs(t, err, astro_errors.ErrNotFound)
	assert.Equal(t, 0, messageRepo.count())
	assert.Empty(t, pub.published())
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	messageRepo := newFakeMessageRepo()
	pub := &fakePublisher{}
	svc := newTestChatService(accountRepo, messageRepo, pub)

	sender := newTestAccount(t, accountRepo, "alice@example.com")

	_, err := svc.SendMessage(context.Background(), sender, uuid.New(), "hello")
	assert.ErrorIs(t, err, astro_errors.ErrNotFound)
	assert.Equal(t, 0, messageRepo.count())
	assert.Empty(t, pub.published())
}

func TestSendMessageEmptyBody(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	messageRepo := newFakeMessageRepo()
	pub := &fakePublisher{}
	svc := newTestChatService(accountRepo, messageRepo, pub)

	sender := newTestAccount(t, accountRepo, "alice@example.com")
	receiver := newTestAccount(t, accountRepo, "bob@example.com")

	_, err := svc.SendMessage(context.Background(), sender, receiver, "")
	assert.ErrorIs(t, err, astro_errors.ErrInvalidInput)
	assert.Equal(t, 0, messageRepo.count())
}

func TestMessagesBetweenMergesBothDirectionsOldestFirst(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	messageRepo := newFakeMessageRepo()
	pub := &fakePublisher{}
	svc := newTestChatService(accountRepo, messageRepo, pub)
	ctx := context.Background()

	alice := newTestAccount(t, accountRepo, "alice@example.com")
	bob := newTestAccount(t, accountRepo, "bob@example.com")
	carol := newTestAccount(t, accountRepo, "carol@example.com")

	first, err := svc.SendMessage(ctx, alice, bob, "hi bob")
	require.NoError(t, err)
	second, err := svc.SendMessage(ctx, bob, alice, "hi alice")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, alice, carol, "hi carol")
	require.NoError(t, err)

	messages, err := svc.MessagesBetween(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID)
	assert.Equal(t, second.ID, messages[1].ID)

	// Symmetric regardless of argument order.
	reversed, err := svc.MessagesBetween(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, messages, reversed)
}

func TestMessagesBetweenEmptyConversation(t *testing.T) {
	svc := newTestChatService(newFakeAccountRepo(), newFakeMessageRepo(), &fakePublisher{})

	messages, err := svc.MessagesBetween(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestHandleNotification(t *testing.T) {
	svc := newTestChatService(newFakeAccountRepo(), newFakeMessageRepo(), &fakePublisher{})

	event := message.NotificationEvent{
		MessageID:  uuid.NewString(),
		SenderID:   uuid.NewString(),
		ReceiverID: uuid.NewString(),
		Body:       "hello",
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Type:       message.NotificationTypeNewMessage,
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, svc.HandleNotification(body))
	assert.Error(t, svc.HandleNotification([]byte("{not json")))
}
