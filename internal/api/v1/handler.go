package v1

import (
	"net/url"
	"strings"

	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/config"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/constants"
	"github.com/ffineis/sam-twilio-sms-to-sqs/internal/service"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	service service.WebhookService
	cfg     config.Webhook
}

func NewHandler(logger *zap.Logger, service service.WebhookService, cfg config.Webhook) *Handler {
	return &Handler{logger: logger, service: service, cfg: cfg}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// Inbound fields one provider webhook callback. The raw body is parsed
// with ParseQuery rather than BodyParser so blank values survive;
// signature verification needs the payload exactly as posted.
func (h *Handler) Inbound(c *fiber.Ctx) error {
	ctx := c.UserContext()

	form, err := url.ParseQuery(string(c.Body()))
	if err != nil {
		h.logger.Warn("Failed to parse webhook body", zap.Error(err))
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    constants.ErrCodeRequestRejected,
			"message": constants.GetErrorMessage(constants.ErrCodeRequestRejected),
		})
	}

	cmd := service.ProcessInboundCommand{
		RequestURL: h.requestURL(c),
		Form:       form,
		Signature:  c.Get(h.signatureHeader()),
	}

	resp, err := h.service.ProcessInbound(ctx, cmd)
	if err != nil {
		h.logger.Warn("Webhook processing failed",
			zap.Error(err),
			zap.String("url", cmd.RequestURL))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(
		InboundMessageResponse{Status: "queued", MessageID: resp.QueueMessageID})
}

// requestURL rebuilds the URL the provider signed. A configured public
// base URL wins over what fiber sees locally.
func (h *Handler) requestURL(c *fiber.Ctx) string {
	if h.cfg.BaseURL != "" {
		return strings.TrimRight(h.cfg.BaseURL, "/") + c.OriginalURL()
	}
	return c.BaseURL() + c.OriginalURL()
}

func (h *Handler) signatureHeader() string {
	if h.cfg.SignatureHeader != "" {
		return h.cfg.SignatureHeader
	}
	return twilio.SignatureHeader
}
