package amqpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"agora-ads/internal/config/configs"
	"agora-ads/internal/core/domain"
)

// Notifier publishes activation notifications to a durable RabbitMQ
// queue consumed by the notification service. It implements
// port.Notifier; callers treat publish failures as non-fatal.
type Notifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewNotifier dials the broker and declares the notification queue. The
// caller must Close the returned notifier on shutdown.
func NewNotifier(cfg configs.AMQP) (*Notifier, error) {
	conn, err := amqp.Dial(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	_, err = channel.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}
	return &Notifier{conn: conn, channel: channel, queue: cfg.Queue}, nil
}

type activationMessage struct {
	Recipient  string `json:"recipient"`
	CampaignID string `json:"campaign_id"`
	Kind       string `json:"kind"`
}

// NotifyActivation publishes a campaign_activated message addressed to
// the campaign owner.
func (n *Notifier) NotifyActivation(ctx context.Context, c *domain.Campaign) error {
	body, err := json.Marshal(activationMessage{
		Recipient:  c.CreatedBy,
		CampaignID: c.ID,
		Kind:       "campaign_activated",
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	err = n.channel.PublishWithContext(ctx,
		"",      // exchange
		n.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (n *Notifier) Close() error {
	if n.channel != nil {
		_ = n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
