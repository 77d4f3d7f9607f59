package service

type ProcessInboundResponse struct {
	QueueMessageID string `json:"queue_message_id"`
}
