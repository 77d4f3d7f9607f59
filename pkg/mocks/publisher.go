package mocks

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mq"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (_m *Publisher) Publish(ctx context.Context, msg mq.Message) (string, error) {
	ret := _m.Called(ctx, msg)
	return ret.String(0), ret.Error(1)
}
