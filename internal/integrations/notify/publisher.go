// Package notify publishes customer notification events to RabbitMQ.
// A separate mailer consumer renders templates and delivers them, so a
// broker outage can never fail a booking transition.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Logger logging contract for the publisher
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher notification event publisher
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      Logger
}

// NewPublisher connects to the broker and declares the exchange.
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		log:      log,
	}, nil
}

// Send publishes one notification. The template doubles as the routing key.
func (p *Publisher) Send(ctx context.Context, template, recipient string, variables map[string]string) error {
	msg := Message{
		Template:   template,
		Recipient:  recipient,
		Variables:  variables,
		OccurredAt: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		template, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: template=%s recipient=%s: %v", ErrPublish, template, recipient, err)
	}

	p.log.Info("Published notification template=%s recipient=%s", template, recipient)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
