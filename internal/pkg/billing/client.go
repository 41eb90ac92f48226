package billing

import (
	"Dresscode/internal/api/config"
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Intent 支付服务商创建的支付意向
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Client 订阅支付服务商客户端，只负责换取 client secret，
// 支付确认完全发生在移动端与服务商之间
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	cfg := config.Cfg.Billing
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.URL).
			SetAuthToken(cfg.SecretKey).
			SetTimeout(15 * time.Second),
	}
}

// CreatePaymentIntent 为订阅创建支付意向并返回 client secret
func (s *Client) CreatePaymentIntent(ctx context.Context, userID uint64, plan string, amount int64, currency string) (*Intent, error) {
	var intent Intent
	resp, err := s.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":            strconv.FormatInt(amount, 10),
			"currency":          currency,
			"metadata[user_id]": strconv.FormatUint(userID, 10),
			"metadata[plan]":    plan,
		}).
		SetResult(&intent).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, errors.Wrap(err, "billing request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("billing provider returned %s", resp.Status())
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("billing provider returned empty client secret")
	}

	return &intent, nil
}
