package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/api"
	v1 "github.com/ffineis/sam-twilio-sms-to-sqs/internal/api/v1"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/config"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/middleware"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/service"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/httpclient"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mq"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/secrets"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewFiberApp,
			NewAWSConfig,
			NewSQSPublisher,
			NewSecretsProvider,
			NewCredentialService,
			NewTwilioSender,
			NewReplyService,
			NewWebhookService,
			NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting webhook listener",
				zap.String("port", cfg.API.Port),
				zap.String("env", cfg.Env))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func NewAWSConfig(cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
}

func NewSQSPublisher(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) mq.Publisher {
	return mq.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.Queue.URL, logger)
}

func NewSecretsProvider(awsCfg aws.Config, logger *zap.Logger) secrets.Provider {
	return secrets.NewSecretsManager(secretsmanager.NewFromConfig(awsCfg), logger)
}

func NewCredentialService(provider secrets.Provider, cfg *config.Config, logger *zap.Logger) service.CredentialService {
	return service.NewCredentialService(provider, cfg.Credentials.SecretName, logger)
}

func NewTwilioSender(cfg *config.Config) twilio.Sender {
	client := httpclient.NewHTTPClient(cfg.Twilio.Timeout)
	return twilio.NewClient(cfg.Twilio, client)
}

func NewReplyService(sender twilio.Sender, cfg *config.Config, logger *zap.Logger) service.ReplyService {
	return service.NewReplyService(sender, cfg.Webhook.AckEnabled, cfg.Webhook.AckText, logger)
}

func NewWebhookService(credentials service.CredentialService, publisher mq.Publisher,
	reply service.ReplyService, cfg *config.Config, logger *zap.Logger) service.WebhookService {
	return service.NewWebhookService(credentials, publisher, reply, cfg.Env, logger)
}

func NewHandler(logger *zap.Logger, svc service.WebhookService, cfg *config.Config) *v1.Handler {
	return v1.NewHandler(logger, svc, cfg.Webhook)
}
