package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

type Config struct {
	SecretName string `mapstructure:"secret_name"`
}

// Provider fetches an opaque secret string by name. Callers own parsing
// and caching.
type Provider interface {
	GetSecretString(ctx context.Context, name string) (string, error)
}

// SecretsManagerAPI is the slice of the Secrets Manager client the
// provider uses.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var _ Provider = (*SecretsManager)(nil)

type SecretsManager struct {
	api    SecretsManagerAPI
	logger *zap.Logger
}

func NewSecretsManager(api SecretsManagerAPI, logger *zap.Logger) *SecretsManager {
	return &SecretsManager{api: api, logger: logger}
}

func (s *SecretsManager) GetSecretString(ctx context.Context, name string) (string, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		s.logger.Error("Failed to fetch secret",
			zap.Error(err),
			zap.String("secretName", name))
		return "", fmt.Errorf("failed to fetch secret %s: %w", name, err)
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", name)
	}

	return *out.SecretString, nil
}
