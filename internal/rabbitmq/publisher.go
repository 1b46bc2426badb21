package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPublisher is the publish surface the messaging flow needs.
// Publish failures are logged here and never propagated to the caller;
// the persisted message is the durable source of truth and notification
// delivery is best-effort.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, routingKey string, payload any)
}

// PublishNotification publishes a payload to the notification exchange
// under the given routing key. When the broker is unreachable the event
// is dropped with an error log; nothing is retried or buffered.
func (c *Client) PublishNotification(ctx context.Context, routingKey string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel == nil {
		c.logger.Errorf("RabbitMQ channel unavailable, notification for %s dropped", routingKey)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Errorf("Failed to marshal notification payload: %v", err)
		return
	}

	err = c.channel.PublishWithContext(
		ctx,
		c.notificationExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Errorf("Failed to publish notification to %s: %v", routingKey, err)
		return
	}

	c.logger.Debugf("Notification published, exchange=%s routing_key=%s", c.notificationExchange, routingKey)
}

// SendToQueue publishes a payload straight to the raw message queue via
// the default exchange. Same no-op semantics as PublishNotification
// when disconnected.
func (c *Client) SendToQueue(ctx context.Context, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel == nil {
		c.logger.Errorf("RabbitMQ channel unavailable, message for queue %s dropped", c.messageQueue)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Errorf("Failed to marshal queue payload: %v", err)
		return
	}

	err = c.channel.PublishWithContext(
		ctx,
		"", // default exchange
		c.messageQueue,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Errorf("Failed to send message to queue %s: %v", c.messageQueue, err)
		return
	}

	c.logger.Debugf("Message sent to queue %s", c.messageQueue)
}
