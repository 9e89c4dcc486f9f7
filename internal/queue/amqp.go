package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes persistent JSON messages to a durable RabbitMQ
// queue. The connection is opened lazily and redialed after it drops.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewAMQPPublisher creates a publisher for url. No connection is made until
// the first publish.
func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: BookingConfirmedQueue}
}

// PublishBookingConfirmed marshals event and publishes it to the
// booking.confirmed queue through the default exchange.
func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.BookingID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.BookingID, err)
	}

	slog.Debug("Published booking event", "queue", p.queue, "booking_id", event.BookingID)
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

// Close closes the broker connection if one is open.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}
