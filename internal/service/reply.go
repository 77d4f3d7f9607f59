package service

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"go.uber.org/zap"
)

// ReplyService optionally acknowledges a relayed message by texting the
// sender back from the number that received it. Best effort: the forward
// has already succeeded by the time this runs, so a failed reply never
// fails the invocation.
type ReplyService interface {
	Acknowledge(ctx context.Context, cred model.Credential, msg model.Message) error
}

type reply struct {
	sender  twilio.Sender
	enabled bool
	text    string
	logger  *zap.Logger
}

func NewReplyService(sender twilio.Sender, enabled bool, text string, logger *zap.Logger) ReplyService {
	return &reply{sender: sender, enabled: enabled, text: text, logger: logger}
}

func (r *reply) Acknowledge(ctx context.Context, cred model.Credential, msg model.Message) error {
	if !r.enabled {
		return nil
	}

	cmd := twilio.SendMessageCommand{
		AccountSID: cred.AccountSID,
		AuthToken:  cred.AuthToken,
		From:       msg.To,
		To:         msg.From,
		Body:       r.text,
	}

	resp, err := r.sender.SendMessage(ctx, cmd)
	if err != nil {
		return err
	}

	r.logger.Debug("Acknowledgement sent",
		zap.String("sid", resp.SID),
		zap.String("to", msg.From))

	return nil
}
