package mocks

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/stretchr/testify/mock"
)

type ReplyService struct {
	mock.Mock
}

func (m *ReplyService) Acknowledge(ctx context.Context, cred model.Credential, msg model.Message) error {
	args := m.Called(ctx, cred, msg)
	return args.Error(0)
}
