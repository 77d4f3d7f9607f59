package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/service"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const secretName = "twilio-sms-to-sqs"

func TestCredentialService_Get(t *testing.T) {
	logger := zap.NewNop()

	secretJSON := `{"TWILIO_ACCOUNT_SID":"AC123","TWILIO_AUTH_TOKEN":"token-abc"}`

	t.Run("fetches once and serves from cache afterwards", func(t *testing.T) {
		mockProvider := &mocks.SecretsProvider{}
		svc := service.NewCredentialService(mockProvider, secretName, logger)

		mockProvider.On("GetSecretString", context.Background(), secretName).
			Return(secretJSON, nil).Once()

		first, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "AC123", first.AccountSID)
		assert.Equal(t, "token-abc", first.AuthToken)

		second, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)

		mockProvider.AssertNumberOfCalls(t, "GetSecretString", 1)
	})

	t.Run("retries after a failed fetch", func(t *testing.T) {
		mockProvider := &mocks.SecretsProvider{}
		svc := service.NewCredentialService(mockProvider, secretName, logger)

		mockProvider.On("GetSecretString", context.Background(), secretName).
			Return("", errors.New("secrets manager unavailable")).Once()
		mockProvider.On("GetSecretString", context.Background(), secretName).
			Return(secretJSON, nil).Once()

		_, err := svc.Get(context.Background())
		assert.Error(t, err)

		cred, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "AC123", cred.AccountSID)

		mockProvider.AssertNumberOfCalls(t, "GetSecretString", 2)
	})

	t.Run("fails on malformed secret JSON", func(t *testing.T) {
		mockProvider := &mocks.SecretsProvider{}
		svc := service.NewCredentialService(mockProvider, secretName, logger)

		mockProvider.On("GetSecretString", context.Background(), secretName).
			Return("not-json", nil)

		_, err := svc.Get(context.Background())

		assert.Error(t, err)
	})

	t.Run("fails when a credential key is missing", func(t *testing.T) {
		mockProvider := &mocks.SecretsProvider{}
		svc := service.NewCredentialService(mockProvider, secretName, logger)

		mockProvider.On("GetSecretString", context.Background(), secretName).
			Return(`{"TWILIO_ACCOUNT_SID":"AC123"}`, nil)

		_, err := svc.Get(context.Background())

		assert.Error(t, err)
	})
}
