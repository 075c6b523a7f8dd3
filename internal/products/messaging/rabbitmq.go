package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"product-catalog/internal/products"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentTypeJSON = "application/json"

type RabbitPublisher struct {
	channel *amqp.Channel
	queue   string
}

func NewRabbitPublisher(conn *amqp.Connection, queue string) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	return &RabbitPublisher{
		channel: ch,
		queue:   queue,
	}, nil
}

// Publish sends the event on its own goroutine and returns a completion
// handle immediately. The caller never blocks on delivery; the single
// buffered send carries the publish outcome.
func (p *RabbitPublisher) Publish(ctx context.Context, event products.ProductEvent) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)

		payload, err := json.Marshal(event)
		if err != nil {
			done <- fmt.Errorf("marshal event: %w", err)
			return
		}

		if err := p.channel.PublishWithContext(
			ctx,
			"",
			p.queue,
			false,
			false,
			amqp.Publishing{
				ContentType: contentTypeJSON,
				Body:        payload,
			},
		); err != nil {
			done <- fmt.Errorf("publish to %q: %w", p.queue, err)
		}
	}()

	return done
}

func (p *RabbitPublisher) Close() error {
	return p.channel.Close()
}
