package dto

// BillingIntentDTO 创建支付意向
type BillingIntentDTO struct {
	Plan string `json:"plan" binding:"required"`
}

// BillingIntentResultDTO 返回给客户端用于确认支付
type BillingIntentResultDTO struct {
	ClientSecret string `json:"client_secret"`
}

// SubscriptionDTO 支付完成后回写的订阅状态
type SubscriptionDTO struct {
	Plan      string `json:"plan" binding:"required"`
	Status    string `json:"status" binding:"required"`
	ExpiresAt string `json:"expires_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
