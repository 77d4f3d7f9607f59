package mocks

import (
	"context"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/stretchr/testify/mock"
)

type CredentialService struct {
	mock.Mock
}

func (m *CredentialService) Get(ctx context.Context) (model.Credential, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Credential), args.Error(1)
}
