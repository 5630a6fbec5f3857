package mq

import "context"

// Publisher delivers domain events. Publishing is best-effort: callers log
// failures and never fail the request because of them.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

// NopPublisher drops every event; used when RabbitMQ is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }

var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = NopPublisher{}
)
