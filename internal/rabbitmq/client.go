// Package rabbitmq holds the process-wide broker client used for
// notification fan-out. One connection/channel pair is established at
// startup and shared by all requests; channel writes are serialized
// with a mutex because the underlying channel is not safe for
// concurrent publishes.
package rabbitmq

import (
	"errors"
	"sync"
	"time"

	"astro-chat/config"
	"astro-chat/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// State describes the connection lifecycle for observability.
type State string

const (
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
	StateClosed     State = "closed"
)

const reconnectDelay = 5 * time.Second

var errClientClosed = errors.New("rabbitmq client closed")

type Client struct {
	url                  string
	messageQueue         string
	notificationExchange string
	logger               *logger.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	state   State

	// registered by ConsumeNotifications, re-attached on reconnect
	onNotification func(body []byte) error

	done chan struct{}
}

func NewClient(cfg *config.Config, l *logger.Logger) *Client {
	return &Client{
		url:                  cfg.RabbitMQURL,
		messageQueue:         cfg.MessageQueue,
		notificationExchange: cfg.NotificationExchange,
		logger:               l,
		state:                StateConnecting,
		done:                 make(chan struct{}),
	}
}

// Start connects to the broker and supervises the connection. A failed
// dial is retried after a fixed delay, indefinitely; a dropped
// connection re-enters the same loop.
func (c *Client) Start() {
	go c.supervise()
}

func (c *Client) supervise() {
	for {
		select {
		case <-c.done:
			return
		default:
		}

		closed, err := c.connect()
		if err != nil {
			if errors.Is(err, errClientClosed) {
				return
			}
			c.logger.Errorf("Failed to connect to RabbitMQ: %v, retrying in %s", err, reconnectDelay)
			select {
			case <-c.done:
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}

		select {
		case <-c.done:
			return
		case amqpErr := <-closed:
			c.mu.Lock()
			c.state = StateConnecting
			c.conn = nil
			c.channel = nil
			c.mu.Unlock()
			c.logger.Errorf("RabbitMQ connection lost: %v, reconnecting in %s", amqpErr, reconnectDelay)
			select {
			case <-c.done:
				return
			case <-time.After(reconnectDelay):
			}
		}
	}
}

// connect dials the broker, opens the shared channel and declares the
// topology: one durable queue for raw message delivery and one durable
// topic exchange for notification routing.
func (c *Client) connect() (chan *amqp.Error, error) {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		c.messageQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		c.notificationExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	closed := make(chan *amqp.Error, 1)
	conn.NotifyClose(closed)

	callback, ok := c.adopt(conn, ch)
	if !ok {
		ch.Close()
		conn.Close()
		return nil, errClientClosed
	}

	c.logger.Infof("Connected to RabbitMQ, queue=%s exchange=%s", c.messageQueue, c.notificationExchange)

	if callback != nil {
		if err := c.startConsumer(ch, callback); err != nil {
			c.logger.Errorf("Failed to restart notification consumer: %v", err)
		}
	}

	return closed, nil
}

// adopt installs a freshly opened connection/channel pair unless the
// client was closed while the dial was in flight. Without this check a
// Close() racing connect() would leak the new connection and flip the
// state back to connected.
func (c *Client) adopt(conn *amqp.Connection, ch *amqp.Channel) (func(body []byte) error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return nil, false
	default:
	}

	c.conn = conn
	c.channel = ch
	c.state = StateConnected
	return c.onNotification, true
}

// State reports the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close tears the channel down before the connection, each best-effort.
func (c *Client) Close() {
	close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Errorf("Error closing RabbitMQ channel: %v", err)
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Errorf("Error closing RabbitMQ connection: %v", err)
		}
		c.conn = nil
	}
	c.state = StateClosed
	c.logger.Infof("RabbitMQ connection closed")
}
