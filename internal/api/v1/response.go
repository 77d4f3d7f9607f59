package v1

type InboundMessageResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}
