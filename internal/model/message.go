package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is the canonical shape of one inbound SMS after the webhook
// payload has been verified and normalized. All fields are non-empty.
type Message struct {
	From              string
	To                string
	Text              string
	ProviderMessageID string
}

// GroupKey identifies the conversation pair. Every message between the
// same two parties shares a group key so the queue preserves their order.
func (m Message) GroupKey() string {
	return m.From + "|" + m.To
}

// QueuePayload is the envelope submitted to the queue. Key names are
// stable; downstream consumers decode by them.
type QueuePayload struct {
	ReceiptID         string    `json:"receipt_id"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Text              string    `json:"text"`
	ProviderMessageID string    `json:"provider_message_id"`
	ReceivedAt        time.Time `json:"received_at"`
	Environment       string    `json:"environment"`
}

func NewQueuePayload(msg Message, environment string) QueuePayload {
	return QueuePayload{
		ReceiptID:         uuid.NewString(),
		From:              msg.From,
		To:                msg.To,
		Text:              msg.Text,
		ProviderMessageID: msg.ProviderMessageID,
		ReceivedAt:        time.Now().UTC(),
		Environment:       environment,
	}
}
