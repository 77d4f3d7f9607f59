package service

import (
	"fmt"
	"net/url"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
)

// Form keys of Twilio's inbound SMS webhook contract. Case-sensitive.
const (
	fieldFrom       = "From"
	fieldTo         = "To"
	fieldBody       = "Body"
	fieldMessageSid = "MessageSid"
)

var requiredFields = []string{fieldFrom, fieldTo, fieldBody, fieldMessageSid}

// flattenForm reduces decoded form values to one value per key. Repeated
// keys keep the last value posted. Blank values survive so signature
// verification sees the full posted payload.
func flattenForm(form url.Values) map[string]string {
	fields := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) == 0 {
			fields[key] = ""
			continue
		}
		fields[key] = values[len(values)-1]
	}
	return fields
}

// normalizeMessage extracts the canonical message from the verified form
// fields. Unknown fields are ignored and the message text is passed
// through exactly as decoded.
func normalizeMessage(fields map[string]string) (model.Message, error) {
	for _, key := range requiredFields {
		if fields[key] == "" {
			return model.Message{}, fmt.Errorf("missing required field %q", key)
		}
	}

	return model.Message{
		From:              fields[fieldFrom],
		To:                fields[fieldTo],
		Text:              fields[fieldBody],
		ProviderMessageID: fields[fieldMessageSid],
	}, nil
}
