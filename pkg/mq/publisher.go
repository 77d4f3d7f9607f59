package mq

import "context"

// Message is one queue submission. GroupID scopes FIFO ordering: every
// message sharing a group is delivered to consumers in publish order.
// DedupID suppresses redelivered duplicates inside the queue's
// deduplication window.
type Message struct {
	GroupID string
	DedupID string
	Body    []byte
}

// Publisher submits a message to the queue in a single best-effort
// attempt and returns the queue-assigned message id. Implementations must
// be safe for concurrent use and must not retry internally; the webhook
// sender retries the whole request and DedupID keeps that safe.
type Publisher interface {
	Publish(ctx context.Context, msg Message) (string, error)
}
