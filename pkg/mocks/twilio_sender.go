package mocks

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"github.com/stretchr/testify/mock"
)

type TwilioSender struct {
	mock.Mock
}

func (_m *TwilioSender) SendMessage(ctx context.Context, cmd twilio.SendMessageCommand) (twilio.SendMessageResponse, error) {
	ret := _m.Called(ctx, cmd)
	return ret.Get(0).(twilio.SendMessageResponse), ret.Error(1)
}
