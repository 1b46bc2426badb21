package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// notificationLogQueue collects every notification published to the
// exchange through a catch-all binding. It stands in for per-connection
// subscribers (e.g. a live socket gateway) that would bind narrowly on
// their own user.<id> routing key.
const notificationLogQueue = "notification_log_queue"

// ConsumeNotifications binds a durable, non-exclusive queue to the
// notification exchange with a catch-all pattern and delivers every
// event body to callback. A successful callback acks the delivery; a
// failed one nacks it with requeue, so the broker redelivers it. The
// callback is re-attached automatically after a reconnect.
func (c *Client) ConsumeNotifications(callback func(body []byte) error) error {
	c.mu.Lock()
	c.onNotification = callback
	ch := c.channel
	c.mu.Unlock()

	if ch == nil {
		// Not connected yet; the supervisor attaches the consumer once
		// the connection is up.
		return nil
	}
	return c.startConsumer(ch, callback)
}

func (c *Client) startConsumer(ch *amqp.Channel, callback func(body []byte) error) error {
	q, err := ch.QueueDeclare(
		notificationLogQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	if err := ch.QueueBind(q.Name, "#", c.notificationExchange, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		q.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for d := range deliveries {
			c.handleDelivery(d, callback)
		}
	}()

	c.logger.Infof("Consuming notifications from queue %s", q.Name)
	return nil
}

// handleDelivery runs the callback and settles the delivery: ack on
// success, nack with requeue on failure. The queue has no dead-letter
// exchange, so a non-requeued nack would drop the event for good.
func (c *Client) handleDelivery(d amqp.Delivery, callback func(body []byte) error) {
	if err := callback(d.Body); err != nil {
		c.logger.Errorf("Notification consumer callback failed: %v", err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}
