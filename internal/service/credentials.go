package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/model"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/secrets"
	"go.uber.org/zap"
)

// CredentialService hands out the provider credential, fetching it from
// the secret store on first use and caching it for the process lifetime.
// Failed fetches are never cached, so a later request retries the fetch.
type CredentialService interface {
	Get(ctx context.Context) (model.Credential, error)
}

type credentialCache struct {
	provider   secrets.Provider
	secretName string
	logger     *zap.Logger

	mu     sync.Mutex
	cached *model.Credential
}

func NewCredentialService(provider secrets.Provider, secretName string, logger *zap.Logger) CredentialService {
	return &credentialCache{provider: provider, secretName: secretName, logger: logger}
}

func (c *credentialCache) Get(ctx context.Context) (model.Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return *c.cached, nil
	}

	raw, err := c.provider.GetSecretString(ctx, c.secretName)
	if err != nil {
		return model.Credential{}, err
	}

	var cred model.Credential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		c.logger.Error("Failed to decode credential secret",
			zap.String("secretName", c.secretName))
		return model.Credential{}, fmt.Errorf("failed to decode credential secret %s", c.secretName)
	}

	if cred.AccountSID == "" || cred.AuthToken == "" {
		return model.Credential{}, fmt.Errorf("credential secret %s is missing required keys", c.secretName)
	}

	c.cached = &cred
	c.logger.Info("Provider credential loaded", zap.String("secretName", c.secretName))

	return cred, nil
}
