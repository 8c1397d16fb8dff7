// Package queue hands acknowledgements to a durable RabbitMQ queue so the
// mail transport runs outside the HTTP request.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"AlumniJobForm_Backend/internal/notify"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp.Channel used here.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type RabbitMQ struct {
	conn    *amqp.Connection
	channel channel
	queue   string
	log     zerolog.Logger
}

func Dial(url, queueName string, logger zerolog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("queue.Dial(): failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("queue.Dial(): failed to open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("queue.Dial(): failed to declare queue: %w", err)
	}

	logger.Info().Str("queue", q.Name).Msg("queue.Dial(): connected to RabbitMQ")
	return &RabbitMQ{conn: conn, channel: ch, queue: q.Name, log: logger}, nil
}

// Notify publishes the acknowledgement; it satisfies notify.Notifier.
func (r *RabbitMQ) Notify(ctx context.Context, ack notify.Acknowledgement) error {
	body, err := json.Marshal(ack)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = r.channel.PublishWithContext(ctx,
		"",      // exchange
		r.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("RabbitMQ.Notify(): failed to publish token %s: %w", ack.TokenNo, err)
	}
	return nil
}

// Consume delivers queued acknowledgements to sender until ctx is done or the
// channel closes. Each message is attempted once; failures are logged and
// dropped.
func (r *RabbitMQ) Consume(ctx context.Context, sender notify.Notifier) error {
	msgs, err := r.channel.Consume(r.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("RabbitMQ.Consume(): failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					r.log.Warn().Msg("RabbitMQ.Consume(): delivery channel closed")
					return
				}
				r.deliver(ctx, sender, d.Body)
				if err := d.Ack(false); err != nil {
					r.log.Warn().Err(err).Msg("RabbitMQ.Consume(): failed to ack delivery")
				}
			}
		}
	}()
	return nil
}

func (r *RabbitMQ) deliver(ctx context.Context, sender notify.Notifier, body []byte) {
	var ack notify.Acknowledgement
	if err := json.Unmarshal(body, &ack); err != nil {
		r.log.Error().Err(err).Msg("RabbitMQ.deliver(): invalid acknowledgement payload")
		return
	}
	if err := sender.Notify(ctx, ack); err != nil {
		r.log.Error().Err(err).Str("token", ack.TokenNo).Msg("RabbitMQ.deliver(): failed to send acknowledgement")
		return
	}
	r.log.Info().Str("token", ack.TokenNo).Msg("RabbitMQ.deliver(): acknowledgement sent")
}

func (r *RabbitMQ) Close() error {
	r.channel.Close()
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
