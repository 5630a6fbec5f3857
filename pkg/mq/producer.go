package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open a channel")
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	err = ch.ExchangeDeclare(
		EventExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		producer.Close()
		return nil, errors.Wrap(err, "failed to declare event exchange")
	}

	return producer, nil
}

// Publish routes the event by its type onto the topic exchange.
func (p *Producer) Publish(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		EventExchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	hlog.CtxDebugf(ctx, "Published event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
