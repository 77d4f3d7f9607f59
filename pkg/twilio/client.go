package twilio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/httpclient"
)

const defaultBaseURL = "https://api.twilio.com"

var _ Sender = (*Client)(nil)

// Sender submits an outbound SMS through the Twilio REST API.
type Sender interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (SendMessageResponse, error)
}

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SendMessageCommand struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
	Body       string
}

type SendMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type Client struct {
	baseURL string
	client  httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *Client) SendMessage(ctx context.Context, cmd SendMessageCommand) (SendMessageResponse, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, cmd.AccountSID)

	form := url.Values{}
	form.Set("From", cmd.From)
	form.Set("To", cmd.To)
	form.Set("Body", cmd.Body)

	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Authorization": basicAuth(cmd.AccountSID, cmd.AuthToken),
	}

	resp, err := c.client.Post(ctx, endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return SendMessageResponse{}, errors.New(ErrorCodeTimeout)
		}

		return SendMessageResponse{}, errors.New(ErrorCodeNetworkError)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return SendMessageResponse{}, errors.New(ErrorCodeInvalidNumber)
		case http.StatusUnauthorized:
			return SendMessageResponse{}, errors.New(ErrorCodeUnauthorized)
		default:
			return SendMessageResponse{}, errors.New(ErrorCodeServerError)
		}
	}

	var res SendMessageResponse
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return SendMessageResponse{}, errors.New(ErrorCodeServerError)
	}

	return res, nil
}

func basicAuth(accountSID, authToken string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(accountSID+":"+authToken))
}
