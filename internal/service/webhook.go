package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/constants"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mq"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"go.uber.org/zap"
)

// WebhookService authenticates one inbound webhook invocation and relays
// the message it carries to the queue. Stages run strictly in sequence
// (verify, normalize, forward); the first failing stage ends the
// invocation, nothing loops or retries.
type WebhookService interface {
	ProcessInbound(ctx context.Context, cmd ProcessInboundCommand) (ProcessInboundResponse, error)
}

type webhook struct {
	credentials CredentialService
	publisher   mq.Publisher
	reply       ReplyService
	environment string
	logger      *zap.Logger
}

func NewWebhookService(credentials CredentialService, publisher mq.Publisher, reply ReplyService,
	environment string, logger *zap.Logger) WebhookService {
	return &webhook{credentials: credentials, publisher: publisher, reply: reply,
		environment: environment, logger: logger}
}

func (w *webhook) ProcessInbound(ctx context.Context, cmd ProcessInboundCommand) (ProcessInboundResponse, error) {
	cred, err := w.credentials.Get(ctx)
	if err != nil {
		return ProcessInboundResponse{}, NewServiceError(constants.ErrCodeCredentialsUnavailable, err)
	}

	fields := flattenForm(cmd.Form)

	outcome := twilio.Validate(cred.AuthToken, cmd.RequestURL, fields, cmd.Signature)
	if !outcome.Valid() {
		w.logger.Warn("Rejected unauthenticated webhook",
			zap.String("reason", outcome.Reason),
			zap.String("url", cmd.RequestURL))
		return ProcessInboundResponse{}, NewServiceError(constants.ErrCodeRequestRejected,
			errors.New(outcome.Reason))
	}

	msg, err := normalizeMessage(fields)
	if err != nil {
		w.logger.Warn("Rejected webhook with invalid payload", zap.Error(err))
		return ProcessInboundResponse{}, NewServiceError(constants.ErrCodeRequestRejected, err)
	}

	payload := model.NewQueuePayload(msg, w.environment)
	body, err := json.Marshal(payload)
	if err != nil {
		return ProcessInboundResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	queueMsg := mq.Message{
		GroupID: msg.GroupKey(),
		DedupID: msg.ProviderMessageID,
		Body:    body,
	}

	messageID, err := w.publisher.Publish(ctx, queueMsg)
	if err != nil {
		code := constants.ErrCodeQueueUnavailable
		if errors.Is(err, mq.ErrRejected) {
			code = constants.ErrCodeQueueRejected
		}
		return ProcessInboundResponse{}, NewServiceError(code, err)
	}

	w.logger.Info("Message forwarded",
		zap.String("providerMessageID", msg.ProviderMessageID),
		zap.String("queueMessageID", messageID),
		zap.String("receiptID", payload.ReceiptID))

	if err := w.reply.Acknowledge(ctx, cred, msg); err != nil {
		w.logger.Warn("Failed to send acknowledgement reply",
			zap.Error(err),
			zap.String("providerMessageID", msg.ProviderMessageID))
	}

	return ProcessInboundResponse{QueueMessageID: messageID}, nil
}
