package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mocks"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSecretsManager_GetSecretString(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns the secret string", func(t *testing.T) {
		mockAPI := &mocks.SecretsManagerAPI{}
		provider := secrets.NewSecretsManager(mockAPI, logger)

		mockAPI.On("GetSecretValue", context.Background(),
			mock.MatchedBy(func(in *secretsmanager.GetSecretValueInput) bool {
				return aws.ToString(in.SecretId) == "twilio-sms-to-sqs"
			})).Return(&secretsmanager.GetSecretValueOutput{
			SecretString: aws.String(`{"TWILIO_ACCOUNT_SID":"AC1","TWILIO_AUTH_TOKEN":"tok"}`),
		}, nil)

		raw, err := provider.GetSecretString(context.Background(), "twilio-sms-to-sqs")

		assert.NoError(t, err)
		assert.Contains(t, raw, "TWILIO_AUTH_TOKEN")

		mockAPI.AssertExpectations(t)
	})

	t.Run("wraps fetch failures", func(t *testing.T) {
		mockAPI := &mocks.SecretsManagerAPI{}
		provider := secrets.NewSecretsManager(mockAPI, logger)

		mockAPI.On("GetSecretValue", mock.Anything, mock.Anything).
			Return(nil, errors.New("access denied"))

		_, err := provider.GetSecretString(context.Background(), "twilio-sms-to-sqs")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "twilio-sms-to-sqs")
	})

	t.Run("fails when the secret has no string value", func(t *testing.T) {
		mockAPI := &mocks.SecretsManagerAPI{}
		provider := secrets.NewSecretsManager(mockAPI, logger)

		mockAPI.On("GetSecretValue", mock.Anything, mock.Anything).
			Return(&secretsmanager.GetSecretValueOutput{}, nil)

		_, err := provider.GetSecretString(context.Background(), "twilio-sms-to-sqs")

		assert.Error(t, err)
	})
}
