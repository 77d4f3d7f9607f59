package mocks

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/service"
	"github.com/stretchr/testify/mock"
)

type WebhookService struct {
	mock.Mock
}

func (m *WebhookService) ProcessInbound(ctx context.Context, cmd service.ProcessInboundCommand) (service.ProcessInboundResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.ProcessInboundResponse), args.Error(1)
}
