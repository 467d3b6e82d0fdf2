package event

import (
	"encoding/json"
	"log/slog"

	"github.com/streadway/amqp"
)

// EventPublisher emits quiz lifecycle events on a topic exchange, routed by
// event type (quiz.bank.generated, quiz.session.started, ...).
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *slog.Logger
}

func NewEventPublisher(amqpURL, exchange string, log *slog.Logger) (*EventPublisher, error) {
	if log == nil {
		log = slog.Default()
	}
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

func (p *EventPublisher) Publish(eventType string, payload interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		return err
	}

	p.log.Debug("publishing event", "type", eventType)

	return p.channel.Publish(
		p.exchange,
		eventType, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
