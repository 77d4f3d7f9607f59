package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/service"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mocks"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReplyService_Acknowledge(t *testing.T) {
	logger := zap.NewNop()

	cred := model.Credential{AccountSID: "AC123", AuthToken: "token-abc"}
	msg := model.Message{
		From:              "+15551234567",
		To:                "+15557654321",
		Text:              "Hello",
		ProviderMessageID: "SMabc123",
	}

	t.Run("does nothing when disabled", func(t *testing.T) {
		mockSender := &mocks.TwilioSender{}
		svc := service.NewReplyService(mockSender, false, "Message received.", logger)

		err := svc.Acknowledge(context.Background(), cred, msg)

		assert.NoError(t, err)
		mockSender.AssertNotCalled(t, "SendMessage")
	})

	t.Run("replies to the sender from the receiving number", func(t *testing.T) {
		mockSender := &mocks.TwilioSender{}
		svc := service.NewReplyService(mockSender, true, "Message received.", logger)

		expected := twilio.SendMessageCommand{
			AccountSID: "AC123",
			AuthToken:  "token-abc",
			From:       "+15557654321",
			To:         "+15551234567",
			Body:       "Message received.",
		}

		mockSender.On("SendMessage", context.Background(), expected).
			Return(twilio.SendMessageResponse{SID: "SMreply1"}, nil)

		err := svc.Acknowledge(context.Background(), cred, msg)

		assert.NoError(t, err)
		mockSender.AssertExpectations(t)
	})

	t.Run("propagates send failures", func(t *testing.T) {
		mockSender := &mocks.TwilioSender{}
		svc := service.NewReplyService(mockSender, true, "Message received.", logger)

		mockSender.On("SendMessage", context.Background(), mock.Anything).
			Return(twilio.SendMessageResponse{}, errors.New(twilio.ErrorCodeNetworkError))

		err := svc.Acknowledge(context.Background(), cred, msg)

		assert.Error(t, err)
	})
}
