package api

import (
	v1 "github.com/ffineis/sam-twilio-sms-to-sqs/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Post("/v1/webhooks/sms", handler.Inbound)
}
