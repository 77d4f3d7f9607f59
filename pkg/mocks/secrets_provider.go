package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SecretsProvider struct {
	mock.Mock
}

func (_m *SecretsProvider) GetSecretString(ctx context.Context, name string) (string, error) {
	ret := _m.Called(ctx, name)
	return ret.String(0), ret.Error(1)
}
