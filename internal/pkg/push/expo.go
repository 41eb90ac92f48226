package push

import (
	"Dresscode/internal/api/config"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const tokenPrefix = "ExponentPushToken["

// IsValidToken 校验 Expo 推送 token 的格式
func IsValidToken(token string) bool {
	return strings.HasPrefix(token, tokenPrefix) && strings.HasSuffix(token, "]")
}

type message struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

type relayResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// Client Expo 推送中继客户端
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(config.Cfg.Push.URL).
			SetTimeout(10 * time.Second),
	}
}

// Send 向单个设备发送一条推送，失败不重试
func (s *Client) Send(ctx context.Context, token string, title string, body string) error {
	var result relayResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(message{To: token, Title: title, Body: body, Sound: "default"}).
		SetResult(&result).
		Post("")
	if err != nil {
		return errors.Wrap(err, "push relay request failed")
	}
	if resp.IsError() {
		return errors.Errorf("push relay returned %s", resp.Status())
	}
	if result.Data.Status == "error" {
		return errors.Errorf("push relay rejected message: %s", result.Data.Message)
	}

	log.InfoContext(ctx, "push sent", "title", title)
	return nil
}
