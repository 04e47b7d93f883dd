package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/logi101/eventflow-seating/internal/queue"
)

const defaultDialTimeout = 3 * time.Second

// QueuePublisher publishes seating events to RabbitMQ.  Each publish opens
// its own connection; seating runs are rare enough that pooling is not
// worth a long-lived channel.
type QueuePublisher struct {
	URL string
	// DialTimeout bounds the TCP connect and AMQP handshake.  It is
	// shortened further by the caller's deadline.
	DialTimeout time.Duration
}

// NewQueuePublisher returns a publisher for the broker at url.
func NewQueuePublisher(url string) *QueuePublisher {
	return &QueuePublisher{URL: url, DialTimeout: defaultDialTimeout}
}

func (p *QueuePublisher) dialTimeout(ctx context.Context) time.Duration {
	timeout := p.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

// PublishSeatingGenerated publishes ev to the seating.generated queue as a
// persistent message.  Errors are returned so the caller can log and ignore
// them; publishing never panics.
func (p *QueuePublisher) PublishSeatingGenerated(ctx context.Context, ev queue.SeatingGeneratedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	conn, err := amqp.DialConfig(p.URL, amqp.Config{
		Dial:      amqp.DefaultDial(p.dialTimeout(ctx)),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queue.SeatingGeneratedQueue, // name
		true,                        // durable
		false,                       // autoDelete
		false,                       // exclusive
		false,                       // noWait
		nil,                         // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                          // default exchange
		queue.SeatingGeneratedQueue, // routing key = queue name
		false,                       // mandatory
		false,                       // immediate
		pub,
	); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
