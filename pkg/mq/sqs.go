package mq

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"
)

type Config struct {
	URL string `mapstructure:"url"`
}

// SQSAPI is the slice of the SQS client the publisher uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

var _ Publisher = (*SQSPublisher)(nil)

// SQSPublisher publishes to an SQS FIFO queue. MessageGroupId carries the
// ordering key and MessageDeduplicationId the dedup key; SQS FIFO dedup
// spans a fixed five-minute window, which covers Twilio's webhook retry
// backoff. The underlying client is safe for concurrent use.
type SQSPublisher struct {
	api      SQSAPI
	queueURL string
	logger   *zap.Logger
}

func NewSQSPublisher(api SQSAPI, queueURL string, logger *zap.Logger) *SQSPublisher {
	return &SQSPublisher{api: api, queueURL: queueURL, logger: logger}
}

func (p *SQSPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	out, err := p.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(p.queueURL),
		MessageBody:            aws.String(string(msg.Body)),
		MessageGroupId:         aws.String(msg.GroupID),
		MessageDeduplicationId: aws.String(msg.DedupID),
	})
	if err != nil {
		p.logger.Error("Failed to publish message",
			zap.Error(err),
			zap.String("groupID", msg.GroupID),
			zap.String("dedupID", msg.DedupID))
		return "", classify(err)
	}

	return aws.ToString(out.MessageId), nil
}
